/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package eval implements the simple material evaluation term the
// search consumes (spec §4.9). It deliberately carries no positional
// terms - richer evaluation is out of scope (spec §1).
package eval

import (
	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/types"
)

// Value is a search/evaluation score in pawn units (a pawn counts 1).
type Value int32

var pieceWeight = map[types.PieceType]Value{
	types.Pawn:   1,
	types.Knight: 3,
	types.Bishop: 3,
	types.Rook:   5,
	types.Queen:  9,
	types.King:   0,
}

// Material returns the side-to-move's material balance: the sum of its
// own piece weights minus the sum of the opponent's, per spec §4.9's
// weights Pawn=1 Knight=3 Bishop=3 Rook=5 Queen=9 King=0.
func Material(p *position.Position) Value {
	us := p.SideToMove()
	them := us.Flip()
	var score Value
	for _, pt := range types.PieceTypes {
		w := pieceWeight[pt]
		score += w * Value(p.PieceBB(us, pt).PopCount())
		score -= w * Value(p.PieceBB(them, pt).PopCount())
	}
	return score
}
