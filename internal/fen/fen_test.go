package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjkessler/chesscore/internal/types"
)

func TestDecodeStartFEN(t *testing.T) {
	p, err := Decode(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.AllCastling, p.Castling())
	assert.Equal(t, types.SqNone, p.EnPassant())
	assert.True(t, p.PieceBB(types.White, types.Rook).Has(types.SqA1))
	assert.True(t, p.PieceBB(types.Black, types.Queen).Has(types.SqD8))
	assert.Equal(t, 8, p.PieceBB(types.White, types.Pawn).PopCount())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p, err := Decode(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, StartFEN, Encode(p))
}

func TestDecodeCastlingAndEnPassantFields(t *testing.T) {
	p, err := Decode("8/8/8/3pP3/8/8/8/4K2k w - d6 0 1")
	require.NoError(t, err)
	assert.Equal(t, types.NoCastling, p.Castling())
	assert.Equal(t, types.SqD6, p.EnPassant())
}

func TestDecodeRejectsBadPieceLetter(t *testing.T) {
	_, err := Decode("8/8/8/8/8/8/8/7X w - - 0 1")
	assert.Error(t, err)
}

func TestDecodeRejectsWrongFieldCount(t *testing.T) {
	_, err := Decode("8/8/8/8/8/8/8/8 w - -")
	assert.Error(t, err)
}

func TestDecodeRejectsShortRank(t *testing.T) {
	_, err := Decode("7/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestRenderProducesEightRanksAndFooter(t *testing.T) {
	p, err := Decode(StartFEN)
	require.NoError(t, err)
	out := Render(p)
	assert.Contains(t, out, "a b c d e f g h")
	assert.Contains(t, out, "side to move: w")
}
