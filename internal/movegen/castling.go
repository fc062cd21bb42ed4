/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package movegen

import (
	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/types"
)

// castleSpec names everything genCastling needs to check one of the
// four castling moves, per spec §4.5.
type castleSpec struct {
	right      types.CastlingRights
	kingFrom   types.Square
	rookFrom   types.Square
	rookTo     types.Square
	emptyPath  types.Bitboard // squares (other than king/rook origins) that must be empty
	kingPath   []types.Square // king origin plus every square it crosses, including destination
}

var castleSpecs = [2][2]castleSpec{
	types.White: {
		{types.WhiteKingside, types.SqE1, types.SqH1, types.SqF1, types.Bitboard(0).Set(types.SqF1).Set(types.SqG1), []types.Square{types.SqE1, types.SqF1, types.SqG1}},
		{types.WhiteQueenside, types.SqE1, types.SqA1, types.SqD1, types.Bitboard(0).Set(types.SqB1).Set(types.SqC1).Set(types.SqD1), []types.Square{types.SqE1, types.SqD1, types.SqC1}},
	},
	types.Black: {
		{types.BlackKingside, types.SqE8, types.SqH8, types.SqF8, types.Bitboard(0).Set(types.SqF8).Set(types.SqG8), []types.Square{types.SqE8, types.SqF8, types.SqG8}},
		{types.BlackQueenside, types.SqE8, types.SqA8, types.SqD8, types.Bitboard(0).Set(types.SqB8).Set(types.SqC8).Set(types.SqD8), []types.Square{types.SqE8, types.SqD8, types.SqC8}},
	},
}

// genCastling emits a castling move (represented as the rook's move,
// with the castled flag set) for each of the two sides of c whose
// right is set, rook and king still sit on their original squares,
// every square between king and rook is empty, and neither the
// king's origin nor any square it crosses is attacked - per spec §4.5.
// Squares threatened by the rook's own path are irrelevant.
func (g *Generator) genCastling(p *position.Position, c types.Color) {
	occ := p.AllOccupied()
	for _, spec := range castleSpecs[c] {
		if !p.Castling().Has(spec.right) {
			continue
		}
		if !p.PieceBB(c, types.Rook).Has(spec.rookFrom) {
			continue
		}
		if !p.PieceBB(c, types.King).Has(spec.kingFrom) {
			continue
		}
		if occ&spec.emptyPath != 0 {
			continue
		}
		if anyAttacked(p, c.Flip(), spec.kingPath) {
			continue
		}
		g.emit(types.NewMove(spec.rookFrom, spec.rookTo, types.Rook).WithCastle())
	}
}

func anyAttacked(p *position.Position, by types.Color, squares []types.Square) bool {
	attacked := p.AttacksBy(by, types.SqNone)
	for _, sq := range squares {
		if attacked.Has(sq) {
			return true
		}
	}
	return false
}
