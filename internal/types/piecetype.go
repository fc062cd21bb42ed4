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

// PieceType names one of the six kinds of chess piece. The constant
// order is fixed by the engine's determinism requirement: generators and
// perft must walk piece kinds in exactly this order - Pawn, Rook, Bishop,
// King, Knight, Queen - so that move lists (and therefore perft counts
// and the search's chosen move) are reproducible. The values double as
// array indices; they carry no behaviour of their own.
type PieceType uint8

const (
	Pawn PieceType = iota
	Rook
	Bishop
	King
	Knight
	Queen
	PtNone
	PtLength = PtNone
)

// PieceTypes lists all six kinds in the fixed generation order.
var PieceTypes = [6]PieceType{Pawn, Rook, Bishop, King, Knight, Queen}

// PromotionTypes lists the four kinds a pawn may promote to, in the
// order moves are expanded for a single promoting push or capture.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

var pieceTypeChar = [...]byte{'P', 'R', 'B', 'K', 'N', 'Q', '?'}

// Char returns the upper-case letter used for this piece kind on the
// wire (promotion letters are lower-case; see Move.UCI).
func (pt PieceType) Char() byte {
	return pieceTypeChar[pt]
}

// IsValid reports whether pt names one of the six real piece kinds.
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}
