package uci

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cjkessler/chesscore/internal/types"
)

func TestUciCommandRespondsWithUciok(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name chesscore")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	h := NewHandler()
	out := h.Command("isready")
	assert.Equal(t, "readyok\n", out)
}

func TestPositionStartposThenMoves(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves e2e4 e7e5")
	assert.Empty(t, out)
	assert.True(t, h.pos.PieceBB(types.White, types.Pawn).Has(types.SqE4))
	assert.True(t, h.pos.PieceBB(types.Black, types.Pawn).Has(types.SqE5))
	assert.Equal(t, types.White, h.pos.SideToMove())
}

func TestPositionWithBadMoveReportsInfoString(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves e2e5")
	assert.Contains(t, out, "info string")
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	h := NewHandler()
	out := h.Command("bananas")
	assert.Equal(t, "", out)
}

// waitForSearchIdle polls the search semaphore until the background
// goroutine dispatched by "go" has released it, or the deadline passes.
func waitForSearchIdle(h *Handler) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if h.searchSem.TryAcquire(1) {
			h.searchSem.Release(1)
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

func TestGoCommandRunsAndReleasesTheSearchSemaphore(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	h.Command("go depth 1")
	assert.True(t, waitForSearchIdle(h))
}

func TestQuitReturnsTrue(t *testing.T) {
	h := NewHandler()
	assert.True(t, h.handle("quit"))
}
