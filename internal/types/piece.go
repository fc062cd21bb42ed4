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

// Piece names a (color, kind) pair, used only at the FEN/text boundary -
// the position itself never stores a square->piece mailbox, since the
// twelve bitboards of spec §3 are the single source of truth and moves
// identify a captured piece by scanning those bitboards directly.
type Piece struct {
	Color Color
	Kind  PieceType
}

// PieceIndex returns the index of the bitboard owning (c, pt): the
// twelve piece bitboards are indexed as kindIndex + 6*sideOffset, with
// White at offset 0 and Black at offset 1, per spec §3. kindIndex is the
// PieceType's raw constant value, which equals its position in the fixed
// PieceTypes order; PtNone is not a valid kind to index with.
func PieceIndex(c Color, pt PieceType) int {
	return int(pt) + 6*int(c)
}

var pieceLetters = map[byte]Piece{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop},
	'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop},
	'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

// PieceFromChar maps a FEN piece letter to a Piece. ok is false for any
// byte that is not one of the twelve recognised letters.
func PieceFromChar(c byte) (p Piece, ok bool) {
	p, ok = pieceLetters[c]
	return
}

// Char returns the FEN letter for p: upper-case for White, lower-case
// for Black.
func (p Piece) Char() byte {
	c := p.Kind.Char()
	if p.Color == Black {
		c += 'a' - 'A'
	}
	return c
}
