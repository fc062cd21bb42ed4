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

package types

import "fmt"

// Square is an index in [0, 64) into the board using the little-endian
// rank-file layout: file a-h maps to 0-7, rank 1-8 maps to 0-7, and
// sq = 8*rank + file. Square 0 is a1, square 63 is h8.
type Square uint8

// SqNone marks "no square", e.g. an absent en-passant target.
const SqNone Square = 64

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// File is the column of a square, a=0 .. h=7.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is the row of a square, rank1=0 .. rank8=7.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// IsValid reports whether sq is within [0, 64).
func (sq Square) IsValid() bool {
	return sq < 64
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and rank.
func SquareOf(f File, r Rank) Square {
	return Square((int(r) << 3) + int(f))
}

// String returns the file letter, e.g. "e".
func (f File) String() string {
	return string(rune('a' + f))
}

// String returns the rank digit, e.g. "4".
func (r Rank) String() string {
	return string(rune('1' + r))
}

// String returns the algebraic name of sq, or "-" if sq is not valid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// ParseSquare converts a two character algebraic string ("e4") into a
// Square. It is total: any string that is not exactly two characters
// naming a valid file and rank returns SqNone.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'1'))
}

// GoString supports %#v style debugging output.
func (sq Square) GoString() string {
	return fmt.Sprintf("Square(%d:%s)", uint8(sq), sq.String())
}
