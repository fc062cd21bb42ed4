/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package types holds the plain, array-indexable value types the rest of
// the engine is built from: squares, bitboards, piece kinds, colors,
// castling rights and the packed move record. None of these carry
// behaviour beyond naming array columns - no polymorphism, no interfaces.
package types

import "math/bits"

// Bitboard is a 64 bit word whose bit i represents the presence of
// something on square i using the little-endian rank-file layout
// (square 0 = a1, square 7 = h1, square 63 = h8).
type Bitboard uint64

// Empty and Universe are the two trivial bitboards.
const (
	Empty   Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// file-edge masks used throughout attacks/movegen to suppress wrap-around
// shifts across the board edge.
const (
	FileABb     Bitboard = 0x0101010101010101
	FileHBb     Bitboard = 0x8080808080808080
	NotFileABb Bitboard = ^FileABb
	NotFileHBb Bitboard = ^FileHBb
	NotABFileBb Bitboard = ^(FileABb | (FileABb << 1)) // not a or b file
	NotGHFileBb Bitboard = ^(FileHBb | (FileHBb >> 1)) // not g or h file
	Rank1Bb     Bitboard = 0x00000000000000FF
	Rank2Bb     Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb     Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb     Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb     Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb     Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb     Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb     Bitboard = Rank1Bb << (8 * 7)
)

// Mask returns a bitboard with only bit sq set.
func Mask(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether the bitboard carries a bit on sq.
func (b Bitboard) Has(sq Square) bool {
	return b&Mask(sq) != 0
}

// Set returns b with bit sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | Mask(sq)
}

// Clear returns b with bit sq cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ Mask(sq)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Empty reports whether no bit is set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// LSB returns the square of the lowest set bit. Undefined if b is empty.
func (b Bitboard) LSB() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the square of the highest set bit. Undefined if b is empty.
func (b Bitboard) MSB() Square {
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB clears and returns the lowest set bit's square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// ForEach calls fn once per set bit, in ascending square order, by
// repeatedly extracting the lowest set bit and clearing it with
// b & (b-1). This is the one true iteration order of the engine: every
// generator and every perft walk depends on it for reproducible counts.
func (b Bitboard) ForEach(fn func(sq Square)) {
	for bb := b; bb != 0; {
		fn(bb.PopLSB())
	}
}
