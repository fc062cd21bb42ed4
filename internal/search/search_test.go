package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cjkessler/chesscore/internal/eval"
	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/types"
)

func TestFixedDepthFindsHangingQueenCapture(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.White, types.King, types.SqA1)
	p.PlacePiece(types.Black, types.King, types.SqA8)
	p.PlacePiece(types.White, types.Rook, types.SqD4)
	p.PlacePiece(types.Black, types.Queen, types.SqD8)
	p.SetSideToMove(types.White)

	s := New()
	result := s.FixedDepth(p, 1)
	assert.Equal(t, "d4d8", result.BestMove.UCI())
	assert.True(t, result.Nodes > 0)
}

func TestFixedDepthZeroReturnsMaterialOnly(t *testing.T) {
	p := position.New()
	s := New()
	result := s.FixedDepth(p, 0)
	assert.Equal(t, eval.Value(0), result.Score)
	assert.Equal(t, types.NoMove, result.BestMove)
}

func TestFixedDepthDoesNotMutatePosition(t *testing.T) {
	p := position.New()
	before := p.Clone()
	s := New()
	s.FixedDepth(p, 3)
	assert.Equal(t, 0, p.HistoryLen())
	for c := types.White; c < types.ColorLength; c++ {
		for _, pt := range types.PieceTypes {
			assert.Equal(t, before.PieceBB(c, pt), p.PieceBB(c, pt))
		}
	}
}
