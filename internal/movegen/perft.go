/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package movegen

import "github.com/cjkessler/chesscore/internal/position"

// Perft counts leaves of the legal move tree to a fixed depth, used as
// the generator's ground-truth regression test harness (spec §4.10).
// Every recursion level uses its own Generator. It is not reentrant on
// one Position: p is mutated in place while it runs and restored by the
// time it returns.
func Perft(p *position.Position, depth int) uint64 {
	g := New()
	return perft(g, p, depth)
}

func perft(g *Generator, p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range g.Legal(p) {
		p.MakeMove(m)
		nodes += perft(New(), p, depth-1)
		p.UnmakeMove(m)
	}
	return nodes
}
