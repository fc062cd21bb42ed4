package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/types"
)

func uciSet(moves []types.Move) map[string]bool {
	out := make(map[string]bool, len(moves))
	for _, m := range moves {
		out[m.UCI()] = true
	}
	return out
}

// Scenario 1 (spec §8): starting position has exactly 20 legal moves,
// including both single and double pushes for every file-a pawn.
func TestStartingPositionHas20LegalMoves(t *testing.T) {
	p := position.New()
	g := New()
	moves := g.Legal(p)
	assert.Len(t, moves, 20)
	set := uciSet(moves)
	assert.True(t, set["a2a3"])
	assert.True(t, set["a2a4"])
}

// Scenario 3: en passant is legal and flagged correctly.
func TestEnPassantIsGeneratedWhenLegal(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.White, types.King, types.SqH1)
	p.PlacePiece(types.Black, types.King, types.SqH8)
	p.PlacePiece(types.White, types.Pawn, types.SqE5)
	p.PlacePiece(types.Black, types.Pawn, types.SqD5)
	p.SetSideToMove(types.White)
	p.SetEnPassant(types.SqD6)

	g := New()
	moves := g.Legal(p)
	set := uciSet(moves)
	assert.True(t, set["e5d6"])

	var found types.Move
	for _, m := range moves {
		if m.UCI() == "e5d6" {
			found = m
		}
	}
	assert.True(t, found.IsEnPassant())
}

// Scenario 4: en passant that would expose the king is absent.
func TestEnPassantAbsentWhenItWouldExposeKing(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.White, types.King, types.SqH1)
	p.PlacePiece(types.Black, types.King, types.SqH4)
	p.PlacePiece(types.White, types.Pawn, types.SqE5)
	p.PlacePiece(types.Black, types.Pawn, types.SqD5)
	p.PlacePiece(types.Black, types.Rook, types.SqA1)
	p.SetSideToMove(types.White)
	p.SetEnPassant(types.SqD6)

	g := New()
	moves := g.Legal(p)
	set := uciSet(moves)
	assert.False(t, set["e5d6"])
}

// Scenario 5: castling is absent when the king's path is attacked.
func TestCastlingAbsentWhenPathAttacked(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.Black, types.King, types.SqE8)
	p.PlacePiece(types.Black, types.Rook, types.SqA8)
	p.PlacePiece(types.Black, types.Rook, types.SqH8)
	p.PlacePiece(types.White, types.King, types.SqE1)
	p.PlacePiece(types.White, types.Rook, types.SqD1)
	p.PlacePiece(types.White, types.Rook, types.SqF1)
	p.SetSideToMove(types.Black)
	p.SetCastling(types.BlackKingside | types.BlackQueenside)

	g := New()
	moves := g.Legal(p)
	set := uciSet(moves)
	assert.False(t, set["e8g8"])
	assert.False(t, set["e8c8"])
}

// Scenario 6 setup: a pawn on b7 expands into all four promotion moves.
func TestPromotionGeneratesAllFourKinds(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.White, types.King, types.SqH1)
	p.PlacePiece(types.Black, types.King, types.SqH8)
	p.PlacePiece(types.White, types.Pawn, types.SqB7)
	p.SetSideToMove(types.White)

	g := New()
	moves := g.Legal(p)
	set := uciSet(moves)
	assert.True(t, set["b7b8q"])
	assert.True(t, set["b7b8r"])
	assert.True(t, set["b7b8b"])
	assert.True(t, set["b7b8n"])
}

func TestFreshGeneratorPerRecursionDoesNotAliasParentList(t *testing.T) {
	p := position.New()
	parent := New()
	moves := parent.Legal(p)
	snapshot := append([]types.Move(nil), moves...)

	for _, m := range moves {
		p.MakeMove(m)
		child := New()
		_ = child.Legal(p)
		p.UnmakeMove(m)
	}

	assert.Equal(t, snapshot, moves)
}
