/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package movegen enumerates pseudo-legal and legal moves for a
// position, per spec §4.4-§4.7. Move lists are short-lived containers
// owned by the generator call that produced them - callers should copy
// out what they need before the next PseudoLegal or Legal call reuses the backing
// slice.
package movegen

import (
	"github.com/cjkessler/chesscore/internal/attacks"
	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/types"
)

// Generator produces move lists for a position. It owns two reusable
// slices to avoid an allocation on every call; it is not safe for
// concurrent use by more than one goroutine (matching the position's
// own single-threaded contract, spec §5).
type Generator struct {
	pseudo []types.Move
	legal  []types.Move
}

// New creates a move generator.
func New() *Generator {
	return &Generator{
		pseudo: make([]types.Move, 0, 128),
		legal:  make([]types.Move, 0, 128),
	}
}

// PseudoLegal returns every pseudo-legal move for the side to move, per
// spec §4.4-§4.5. Piece kinds are walked in the fixed order Pawn, Rook,
// Bishop, King, Knight, Queen, and squares within each kind's bitboard
// are walked in ascending order (spec §9's determinism requirement) -
// this exact order is what makes perft counts and the search's chosen
// move reproducible.
func (g *Generator) PseudoLegal(p *position.Position) []types.Move {
	g.pseudo = g.pseudo[:0]
	c := p.SideToMove()
	own := p.Occupied(c)
	occ := p.AllOccupied()

	g.genPawnMoves(p, c, occ)
	g.genSliderMoves(p, c, types.Rook, own, occ, attacks.RookAttacks)
	g.genSliderMoves(p, c, types.Bishop, own, occ, attacks.BishopAttacks)
	g.genKingMoves(p, c, own)
	g.genCastling(p, c)
	g.genKnightMoves(p, c, own)
	g.genSliderMoves(p, c, types.Queen, own, occ, attacks.QueenAttacks)

	return g.pseudo
}

// Legal returns every legal move for the side to move: every
// pseudo-legal move that does not leave the mover's king in check, per
// spec §4.7. Castling moves are passed through unfiltered since the
// generator already rejected attacked-square crossings when it emitted
// them.
func (g *Generator) Legal(p *position.Position) []types.Move {
	g.legal = g.legal[:0]
	for _, m := range g.PseudoLegal(p) {
		if m.IsCastle() || p.IsLegal(m) {
			g.legal = append(g.legal, m)
		}
	}
	return g.legal
}

func (g *Generator) emit(m types.Move) {
	g.pseudo = append(g.pseudo, m)
}

func (g *Generator) genKnightMoves(p *position.Position, c types.Color, own types.Bitboard) {
	p.PieceBB(c, types.Knight).ForEach(func(from types.Square) {
		dests := attacks.Knight[from] &^ own
		dests.ForEach(func(to types.Square) {
			g.emitWithCapture(p, c, from, to, types.Knight)
		})
	})
}

func (g *Generator) genKingMoves(p *position.Position, c types.Color, own types.Bitboard) {
	from := p.KingSquare(c)
	dests := attacks.King[from] &^ own
	dests.ForEach(func(to types.Square) {
		g.emitWithCapture(p, c, from, to, types.King)
	})
}

type sliderAttackFn func(sq types.Square, occupied types.Bitboard) types.Bitboard

func (g *Generator) genSliderMoves(p *position.Position, c types.Color, pt types.PieceType, own, occ types.Bitboard, attack sliderAttackFn) {
	p.PieceBB(c, pt).ForEach(func(from types.Square) {
		dests := attack(from, occ) &^ own
		dests.ForEach(func(to types.Square) {
			g.emitWithCapture(p, c, from, to, pt)
		})
	})
}

// emitWithCapture looks up whether to is occupied by an enemy piece
// (scanning the piece bitboards, per spec §4.4) and emits the move with
// or without a captured kind accordingly.
func (g *Generator) emitWithCapture(p *position.Position, c types.Color, from, to types.Square, pt types.PieceType) {
	m := types.NewMove(from, to, pt)
	if _, capturedKind, ok := p.PieceAt(to); ok {
		m = m.WithCapture(capturedKind)
	}
	g.emit(m)
}

func (g *Generator) genPawnMoves(p *position.Position, c types.Color, occ types.Bitboard) {
	var startRank, promoRank, doubleRank types.Rank
	if c == types.White {
		startRank, doubleRank, promoRank = types.Rank2, types.Rank4, types.Rank8
	} else {
		startRank, doubleRank, promoRank = types.Rank7, types.Rank5, types.Rank1
	}

	p.PieceBB(c, types.Pawn).ForEach(func(from types.Square) {
		// Pushes.
		pushTo := pawnForward(c, from)
		if pushTo.IsValid() && !occ.Has(pushTo) {
			g.emitPawnMove(from, pushTo, types.PtNone, promoRank)
			if from.RankOf() == startRank {
				dbl := pawnForward(c, pushTo)
				if dbl.IsValid() && dbl.RankOf() == doubleRank && !occ.Has(dbl) {
					g.emit(types.NewMove(from, dbl, types.Pawn))
				}
			}
		}
		// Captures, including en passant.
		targets := attacks.PawnAttacks(c, from)
		targets.ForEach(func(to types.Square) {
			if owner, capturedKind, ok := p.PieceAt(to); ok {
				if owner != c {
					g.emitPawnMove(from, to, capturedKind, promoRank)
				}
				return
			}
			if p.EnPassant() != types.SqNone && to == p.EnPassant() {
				g.emit(types.NewMove(from, to, types.Pawn).WithEnPassant())
			}
		})
	})
}

// pawnForward returns the square one step forward of sq for color c, or
// SqNone if that would run off the board.
func pawnForward(c types.Color, sq types.Square) types.Square {
	r := int(sq.RankOf())
	if c == types.White {
		r++
	} else {
		r--
	}
	if r < 0 || r > 7 {
		return types.SqNone
	}
	return types.SquareOf(sq.FileOf(), types.Rank(r))
}

// emitPawnMove expands a pawn move into four promotion records when its
// destination lies on the far rank, or a single non-promoting record
// otherwise, per spec §4.4.
func (g *Generator) emitPawnMove(from, to types.Square, captured types.PieceType, promoRank types.Rank) {
	base := types.NewMove(from, to, types.Pawn)
	if captured != types.PtNone {
		base = base.WithCapture(captured)
	}
	if to.RankOf() == promoRank {
		for _, promo := range types.PromotionTypes {
			g.emit(base.WithPromotion(promo))
		}
		return
	}
	g.emit(base)
}
