package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjkessler/chesscore/internal/types"
)

func TestNewStartingPosition(t *testing.T) {
	p := New()
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.AllCastling, p.Castling())
	assert.Equal(t, types.SqNone, p.EnPassant())
	assert.Equal(t, 16, p.Occupied(types.White).PopCount())
	assert.Equal(t, 16, p.Occupied(types.Black).PopCount())
	assert.Equal(t, types.SqE1, p.KingSquare(types.White))
	assert.Equal(t, types.SqE8, p.KingSquare(types.Black))
}

func TestMakeUnmakeQuietMoveIsExactInverse(t *testing.T) {
	p := New()
	before := p.Clone()

	m := types.NewMove(types.SqE2, types.SqE4, types.Pawn)
	p.MakeMove(m)
	assert.Equal(t, types.Black, p.SideToMove())
	assert.True(t, p.PieceBB(types.White, types.Pawn).Has(types.SqE4))
	assert.False(t, p.PieceBB(types.White, types.Pawn).Has(types.SqE2))
	assert.Equal(t, types.SqE3, p.EnPassant())

	p.UnmakeMove(m)
	assert.Equal(t, before.SideToMove(), p.SideToMove())
	assert.Equal(t, before.Castling(), p.Castling())
	assert.Equal(t, before.EnPassant(), p.EnPassant())
	for c := types.White; c < types.ColorLength; c++ {
		for _, pt := range types.PieceTypes {
			assert.Equal(t, before.PieceBB(c, pt), p.PieceBB(c, pt))
		}
	}
	assert.Equal(t, 0, p.HistoryLen())
}

func TestEnPassantCaptureRemovesCorrectPawn(t *testing.T) {
	p := Empty()
	p.PlacePiece(types.White, types.King, types.SqH1)
	p.PlacePiece(types.Black, types.King, types.SqH8)
	p.PlacePiece(types.White, types.Pawn, types.SqE5)
	p.PlacePiece(types.Black, types.Pawn, types.SqD5)
	p.SetSideToMove(types.White)
	p.SetEnPassant(types.SqD6)

	m := types.NewMove(types.SqE5, types.SqD6, types.Pawn).WithEnPassant()
	p.MakeMove(m)

	assert.True(t, p.PieceBB(types.White, types.Pawn).Has(types.SqD6))
	assert.False(t, p.PieceBB(types.Black, types.Pawn).Has(types.SqD5))
	assert.True(t, p.PieceBB(types.Black, types.Pawn).Empty())

	p.UnmakeMove(m)
	assert.True(t, p.PieceBB(types.White, types.Pawn).Has(types.SqE5))
	assert.True(t, p.PieceBB(types.Black, types.Pawn).Has(types.SqD5))
}

func TestCastlingMovesKingAndRookAndClearsRights(t *testing.T) {
	p := Empty()
	p.PlacePiece(types.White, types.King, types.SqE1)
	p.PlacePiece(types.White, types.Rook, types.SqH1)
	p.PlacePiece(types.Black, types.King, types.SqE8)
	p.SetSideToMove(types.White)
	p.SetCastling(types.AllCastling)

	m := types.NewMove(types.SqH1, types.SqF1, types.Rook).WithCastle()
	p.MakeMove(m)

	assert.True(t, p.PieceBB(types.White, types.King).Has(types.SqG1))
	assert.True(t, p.PieceBB(types.White, types.Rook).Has(types.SqF1))
	assert.False(t, p.Castling().Has(types.WhiteKingside))
	assert.False(t, p.Castling().Has(types.WhiteQueenside))
	assert.True(t, p.Castling().Has(types.BlackKingside))

	p.UnmakeMove(m)
	assert.True(t, p.PieceBB(types.White, types.King).Has(types.SqE1))
	assert.True(t, p.PieceBB(types.White, types.Rook).Has(types.SqH1))
	assert.Equal(t, types.AllCastling, p.Castling())
}

func TestPromotionSwapsKindAndUnmakeRestoresPawn(t *testing.T) {
	p := Empty()
	p.PlacePiece(types.White, types.King, types.SqH1)
	p.PlacePiece(types.Black, types.King, types.SqH8)
	p.PlacePiece(types.White, types.Pawn, types.SqB7)
	p.SetSideToMove(types.White)

	m := types.NewMove(types.SqB7, types.SqB8, types.Pawn).WithPromotion(types.Queen)
	p.MakeMove(m)
	assert.True(t, p.PieceBB(types.White, types.Queen).Has(types.SqB8))
	assert.True(t, p.PieceBB(types.White, types.Pawn).Empty())

	p.UnmakeMove(m)
	assert.True(t, p.PieceBB(types.White, types.Pawn).Has(types.SqB7))
	assert.True(t, p.PieceBB(types.White, types.Queen).Empty())
}

func TestIsLegalRejectsMoveThatExposesOwnKing(t *testing.T) {
	// White king on h1, white rook pinned on f1 by a black rook on a1;
	// moving the rook off the back rank would expose check.
	p := Empty()
	p.PlacePiece(types.White, types.King, types.SqH1)
	p.PlacePiece(types.White, types.Rook, types.SqF1)
	p.PlacePiece(types.Black, types.Rook, types.SqA1)
	p.PlacePiece(types.Black, types.King, types.SqA8)
	p.SetSideToMove(types.White)

	pinned := types.NewMove(types.SqF1, types.SqF4, types.Rook)
	assert.False(t, p.IsLegal(pinned))

	alongRank := types.NewMove(types.SqF1, types.SqB1, types.Rook)
	assert.True(t, p.IsLegal(alongRank))
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	p.MakeMove(types.NewMove(types.SqE2, types.SqE4, types.Pawn))
	clone := p.Clone()
	require.Equal(t, p.HistoryLen(), clone.HistoryLen())

	clone.MakeMove(types.NewMove(types.SqE7, types.SqE5, types.Pawn))
	assert.NotEqual(t, p.HistoryLen(), clone.HistoryLen())
	assert.False(t, p.PieceBB(types.Black, types.Pawn).Has(types.SqE5))
}
