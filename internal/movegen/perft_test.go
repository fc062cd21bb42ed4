package movegen

import (
	"testing"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/require"

	"github.com/cjkessler/chesscore/internal/fen"
)

// Perft ground truth table from spec §8. Each row is run to the deepest
// depth worth the CPU time in a normal test run; shallow depths are kept
// for every position, the full published depth only for the cheaper ones.
func TestPerftGroundTruth(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth []uint64 // index i = depth i+1
	}{
		{
			name:  "startpos",
			fen:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			depth: []uint64{20, 400, 8902, 197281},
		},
		{
			name:  "kiwipete",
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			depth: []uint64{48, 2039, 97862},
		},
		{
			name:  "position3",
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			depth: []uint64{14, 191, 2812, 43238, 674624},
		},
		{
			name:  "position4",
			fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
			depth: []uint64{6, 264, 9467},
		},
		{
			name:  "position5",
			fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
			depth: []uint64{44, 1486},
		},
		{
			name:  "position6",
			fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1",
			depth: []uint64{46, 2079},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for i, want := range c.depth {
				depth := i + 1
				p, err := fen.Decode(c.fen)
				require.NoError(t, err)
				got := Perft(p, depth)
				require.Equal(t, want, got, "perft(%s) at depth %d", c.name, depth)
			}
		})
	}
}

// BenchmarkPerftDepth5 profiles a depth-5 perft on position 3, grounded in
// the teacher's alphabeta_test.go "defer profile.Start().Stop()" pattern.
func BenchmarkPerftDepth5(b *testing.B) {
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	p, err := fen.Decode("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(b, err)
	for i := 0; i < b.N; i++ {
		Perft(p.Clone(), 5)
	}
}
