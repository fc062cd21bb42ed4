package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/types"
)

func TestMaterialIsZeroAtStart(t *testing.T) {
	assert.Equal(t, Value(0), Material(position.New()))
}

func TestMaterialFavorsSideToMoveWithExtraQueen(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.White, types.King, types.SqH1)
	p.PlacePiece(types.Black, types.King, types.SqH8)
	p.PlacePiece(types.White, types.Queen, types.SqD1)
	p.SetSideToMove(types.White)
	assert.Equal(t, Value(9), Material(p))

	p.SetSideToMove(types.Black)
	assert.Equal(t, Value(-9), Material(p))
}

func TestKingsCarryNoWeight(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.White, types.King, types.SqA1)
	p.PlacePiece(types.Black, types.King, types.SqH8)
	assert.Equal(t, Value(0), Material(p))
}
