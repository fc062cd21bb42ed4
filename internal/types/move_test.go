package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovePacking(t *testing.T) {
	m := NewMove(SqE2, SqE4, Pawn)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Pawn, m.Piece())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.False(t, m.IsCastle())
	assert.False(t, m.IsEnPassant())
	assert.Equal(t, "e2e4", m.UCI())
}

func TestMoveWithCapture(t *testing.T) {
	m := NewMove(SqD4, SqE5, Pawn).WithCapture(Knight)
	assert.True(t, m.IsCapture())
	assert.Equal(t, Knight, m.Captured())
}

func TestMoveWithPromotion(t *testing.T) {
	m := NewMove(SqB7, SqB8, Pawn).WithPromotion(Queen)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, "b7b8q", m.UCI())
}

func TestMoveWithEnPassant(t *testing.T) {
	m := NewMove(SqE5, SqD6, Pawn).WithEnPassant()
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())
	assert.Equal(t, Pawn, m.Captured())
}

func TestCastleKingUCI(t *testing.T) {
	cases := []struct {
		rookFrom, rookTo Square
		want             string
	}{
		{SqH1, SqF1, "e1g1"},
		{SqA1, SqD1, "e1c1"},
		{SqH8, SqF8, "e8g8"},
		{SqA8, SqD8, "e8c8"},
	}
	for _, c := range cases {
		m := NewMove(c.rookFrom, c.rookTo, Rook).WithCastle()
		assert.Equal(t, c.want, m.UCI())
	}
}

func TestNoMoveIsZero(t *testing.T) {
	assert.Equal(t, Move(0), NoMove)
}
