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

import "strings"

// Move is a packed move record: from/to squares, the moving piece kind,
// an optional promotion kind, an optional captured kind, a castled flag
// and an en-passant-capture flag - per spec §3/§4.4, "moves are small (≤8
// bytes when packed) and should be copied, not referenced". Packing into
// a single uint32 makes that copy-by-value free.
//
// Bit layout (low to high):
//
//	 0- 5  from square   (6 bits)
//	 6-11  to square     (6 bits)
//	12-14  moving kind   (3 bits, PieceType)
//	15-17  promo kind    (3 bits, PtNone = no promotion)
//	18-20  captured kind (3 bits, PtNone = no capture)
//	   21  castled flag
//	   22  en-passant-capture flag
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	movePromoShift   = 15
	moveCapturedShift = 18
	moveCastledBit   = 1 << 21
	moveEpBit        = 1 << 22

	sixBitMask   = 0x3F
	threeBitMask = 0x7
)

// NoMove is the zero value; it never compares equal to a real move since
// From()==To()==0 only for a null move nobody constructs.
const NoMove Move = 0

// NewMove packs a basic (non-special) move.
func NewMove(from, to Square, piece PieceType) Move {
	return Move(uint32(from)<<moveFromShift | uint32(to)<<moveToShift | uint32(piece)<<movePieceShift |
		uint32(PtNone)<<movePromoShift | uint32(PtNone)<<moveCapturedShift)
}

// WithCapture returns m with the captured kind set.
func (m Move) WithCapture(captured PieceType) Move {
	return (m &^ (threeBitMask << moveCapturedShift)) | Move(uint32(captured)<<moveCapturedShift)
}

// WithPromotion returns m with the promotion kind set.
func (m Move) WithPromotion(promo PieceType) Move {
	return (m &^ (threeBitMask << movePromoShift)) | Move(uint32(promo)<<movePromoShift)
}

// WithCastle returns m with the castled flag set.
func (m Move) WithCastle() Move {
	return m | moveCastledBit
}

// WithEnPassant returns m with the en-passant-capture flag set (and the
// captured kind set to Pawn, as an en-passant capture always takes a pawn).
func (m Move) WithEnPassant() Move {
	return m.WithCapture(Pawn) | moveEpBit
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square(uint32(m) >> moveFromShift & sixBitMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(uint32(m) >> moveToShift & sixBitMask)
}

// Piece returns the kind of the moving piece.
func (m Move) Piece() PieceType {
	return PieceType(uint32(m) >> movePieceShift & threeBitMask)
}

// Promotion returns the promotion kind, or PtNone if this move does not
// promote.
func (m Move) Promotion() PieceType {
	return PieceType(uint32(m) >> movePromoShift & threeBitMask)
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != PtNone
}

// Captured returns the captured kind, or PtNone if this move captures
// nothing. Callers must always consult this, never just "was something
// captured" - an en-passant capture's captured square is not the
// destination, so the kind (always Pawn) is the only safe signal of
// *what* to remove and *where* to look (via IsEnPassant).
func (m Move) Captured() PieceType {
	return PieceType(uint32(m) >> moveCapturedShift & threeBitMask)
}

// IsCapture reports whether this move captures a piece (including
// en-passant).
func (m Move) IsCapture() bool {
	return m.Captured() != PtNone
}

// IsCastle reports whether this move is a castling rook move (the move
// record for castling represents the rook's move; the king's companion
// move is reconstructed deterministically, see spec §4.5).
func (m Move) IsCastle() bool {
	return m&moveCastledBit != 0
}

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m&moveEpBit != 0
}

// UCI renders the move in long algebraic notation: <from><to>[promo],
// e.g. "e2e4", "e7e8q". Castling is expressed as the king's two-square
// move per spec §6, not the rook move the record internally carries.
func (m Move) UCI() string {
	var b strings.Builder
	b.Grow(5)
	if m.IsCastle() {
		b.WriteString(castleKingMove(m).from.String())
		b.WriteString(castleKingMove(m).to.String())
	} else {
		b.WriteString(m.From().String())
		b.WriteString(m.To().String())
	}
	if m.IsPromotion() {
		b.WriteByte(m.Promotion().Char() + 'a' - 'A')
	}
	return b.String()
}

type kingHop struct{ from, to Square }

// castleKingMove derives the king's companion move from a castling rook
// move: rook corner -> king's two-square move, per spec §4.5's fixed
// corner squares.
func castleKingMove(m Move) kingHop {
	switch m.From() {
	case SqH1:
		return kingHop{SqE1, SqG1}
	case SqA1:
		return kingHop{SqE1, SqC1}
	case SqH8:
		return kingHop{SqE8, SqG8}
	case SqA8:
		return kingHop{SqE8, SqC8}
	default:
		panic("castleKingMove: rook origin is not a castling corner")
	}
}

// CastleKingFromTo exposes castleKingMove to other packages (position,
// movegen) that need the king's from/to squares to apply or reverse a
// castling move.
func CastleKingFromTo(m Move) (from, to Square) {
	hop := castleKingMove(m)
	return hop.from, hop.to
}
