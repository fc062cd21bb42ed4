/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package search implements the recursive negamax-with-alpha-beta
// driver of spec §4.9: fixed depth, no transposition table, no
// iterative deepening, no quiescence, no null-move pruning - those are
// explicit Non-goals (spec §1).
package search

import (
	oplog "github.com/op/go-logging"

	"github.com/cjkessler/chesscore/internal/eval"
	mylogging "github.com/cjkessler/chesscore/internal/logging"
	"github.com/cjkessler/chesscore/internal/movegen"
	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/types"
	"github.com/cjkessler/chesscore/internal/util"
)

// ValueInf is used as the initial beta bound; ValueNegInf is one smaller
// in magnitude than -ValueInf so that negating it in the recursive call
// never overflows (spec §4.9: "use a value strictly greater than the
// negation of the minimum so that -alpha does not overflow").
const (
	ValueInf    eval.Value = 1 << 20
	ValueNegInf eval.Value = -ValueInf + 1
)

var log *oplog.Logger

// Result is the outcome of a fixed-depth search: the best score found
// from the root side-to-move's perspective, and the move that achieves
// it. BestMove is types.NoMove when the position has no legal moves.
type Result struct {
	Score    eval.Value
	BestMove types.Move
	Nodes    uint64
}

// Search runs a fixed-depth negamax search. It is not safe for
// concurrent use - spec §5's "no concurrency inside the core" - callers
// that want an async search (the UCI handler) must run at most one
// Search at a time per Position.
type Search struct {
	nodes uint64
}

// New creates a Search instance.
func New() *Search {
	if log == nil {
		log = mylogging.GetSearchLog()
	}
	return &Search{}
}

// FixedDepth runs negamax with alpha-beta to exactly depth plies and
// returns the best move and score for the position's side to move, per
// spec §4.9.
func (s *Search) FixedDepth(p *position.Position, depth int) Result {
	s.nodes = 0
	score, move := s.negamax(p, movegen.New(), depth, ValueNegInf, ValueInf)
	log.Debugf("search depth=%d nodes=%d score=%v move=%s", depth, s.nodes, score, move.UCI())
	return Result{Score: score, BestMove: move, Nodes: s.nodes}
}

// negamax implements spec §4.9's pseudocode exactly:
//
//	search(d, a, b):
//	  if d == 0: return evaluate()
//	  best = none
//	  for m in legal_moves():
//	    make(m); score = -search(d-1, -b, -a); unmake(m)
//	    if score > a: a = score; best = m
//	    if a >= b: break
//	  return (a, best)
//
// Each recursion level uses its own Generator so that a child's move
// list never aliases (and so never corrupts) the parent's - the parent
// is still mid-iteration over its own list when the child runs.
func (s *Search) negamax(p *position.Position, gen *movegen.Generator, depth int, alpha, beta eval.Value) (eval.Value, types.Move) {
	s.nodes++
	if depth == 0 {
		return eval.Material(p), types.NoMove
	}

	moves := gen.Legal(p)
	if len(moves) == 0 {
		// spec §4.9: "If the move list is empty, the node returns the
		// evaluation function's value at that position" - distinguishing
		// checkmate from stalemate is explicitly out of scope.
		return eval.Material(p), types.NoMove
	}

	best := types.NoMove
	for _, m := range moves {
		p.MakeMove(m)
		score, _ := s.negamax(p, movegen.New(), depth-1, -beta, -alpha)
		score = -score
		p.UnmakeMove(m)

		if newAlpha := util.Max(alpha, int(score)); newAlpha > int(alpha) {
			alpha = eval.Value(newAlpha)
			best = m
		}
		if alpha >= beta {
			break
		}
	}
	return alpha, best
}
