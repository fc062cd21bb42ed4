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

// CastlingRights is a 4 bit field, one bit per corner right, per spec §3.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether r carries right.
func (r CastlingRights) Has(right CastlingRights) bool {
	return r&right != 0
}

// Clear returns r with right removed.
func (r CastlingRights) Clear(right CastlingRights) CastlingRights {
	return r &^ right
}

// KingsideFor and QueensideFor pick the right bit for color c.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

func QueensideFor(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// String renders the set of rights in the FEN order KQkq, or "-" if none.
func (r CastlingRights) String() string {
	if r == NoCastling {
		return "-"
	}
	out := make([]byte, 0, 4)
	if r.Has(WhiteKingside) {
		out = append(out, 'K')
	}
	if r.Has(WhiteQueenside) {
		out = append(out, 'Q')
	}
	if r.Has(BlackKingside) {
		out = append(out, 'k')
	}
	if r.Has(BlackQueenside) {
		out = append(out, 'q')
	}
	return string(out)
}
