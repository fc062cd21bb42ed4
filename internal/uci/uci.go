/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package uci implements the line-oriented controller subset of spec §6:
// uci, isready, ucinewgame, position [startpos|fen ...] [moves ...], go
// [depth N], stop, quit, plus a "d" debugging extension. It owns exactly
// one Position, one Generator and one Search, matching the single-
// position, non-reentrant concurrency model of spec §5.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/semaphore"

	"github.com/cjkessler/chesscore/internal/config"
	"github.com/cjkessler/chesscore/internal/fen"
	"github.com/cjkessler/chesscore/internal/logging"
	"github.com/cjkessler/chesscore/internal/movegen"
	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/search"
	"github.com/cjkessler/chesscore/internal/types"
)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Handler reads UCI protocol lines and drives a single Position, move
// generator and search instance in response.
type Handler struct {
	in  *bufio.Scanner
	out *bufio.Writer

	gen *movegen.Generator
	srch *search.Search
	pos *position.Position

	// searchSem is weight 1: at most one search goroutine runs at a
	// time, mirroring the teacher's Search acquire/release pattern for
	// "is a search in flight" (spec §4.14). It gates only the ambient
	// stdio loop's responsiveness - the position itself is still only
	// ever touched by one goroutine at a time.
	searchSem *semaphore.Weighted
}

// NewHandler creates a Handler reading from stdin and writing to stdout,
// starting from the standard position.
func NewHandler() *Handler {
	return &Handler{
		in:        bufio.NewScanner(os.Stdin),
		out:       bufio.NewWriter(os.Stdout),
		gen:       movegen.New(),
		srch:      search.New(),
		pos:       position.New(),
		searchSem: semaphore.NewWeighted(1),
	}
}

// Loop reads lines until "quit" or EOF.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.handle(h.in.Text()) {
			return
		}
	}
}

// Command runs a single line and returns everything it wrote, for tests
// and one-shot invocations.
func (h *Handler) Command(cmd string) string {
	saved := h.out
	buf := new(bytes.Buffer)
	h.out = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.out.Flush()
	h.out = saved
	return buf.String()
}

func (h *Handler) handle(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	logging.GetUciLog().Infof("<< %s", line)

	tokens := regexWhiteSpace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.New()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		// No time-managed search runs long enough to need stopping -
		// fixed-depth search (spec §1's Non-goals exclude time control) -
		// accepted for protocol completeness and logged, not acted on.
		logging.GetUciLog().Info("stop received; fixed-depth searches are not interruptible")
	case "d":
		if !h.searchSem.TryAcquire(1) {
			h.sendInfo("search running; board not shown")
			break
		}
		h.send(fen.Render(h.pos))
		h.searchSem.Release(1)
	default:
		// spec §7: "Unknown controller line -> log and continue."
		logging.GetUciLog().Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name chesscore")
	h.send("id author a student of the FrankyGo engine")
	h.send("uciok")
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfo("position command malformed: %v", tokens)
		return
	}
	i := 1
	var p *position.Position
	switch tokens[i] {
	case "startpos":
		p = position.New()
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteByte(' ')
			i++
		}
		decoded, err := fen.Decode(strings.TrimSpace(b.String()))
		if err != nil {
			h.sendInfo("position command malformed fen: %v", err)
			return
		}
		p = decoded
	default:
		h.sendInfo("position command malformed: %v", tokens)
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, ok := moveFromUCI(h.gen, p, tokens[i])
			if !ok {
				h.sendInfo("position command: invalid move %q", tokens[i])
				return
			}
			p.MakeMove(m)
		}
	}
	h.pos = p
}

func (h *Handler) goCommand(tokens []string) {
	depth := config.Settings.Search.DefaultDepth
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == "depth" && i+1 < len(tokens) {
			if d, err := strconv.Atoi(tokens[i+1]); err == nil {
				depth = d
			}
			i++
		}
	}

	if !h.searchSem.TryAcquire(1) {
		h.sendInfo("search already running")
		return
	}
	p := h.pos
	go func() {
		defer h.searchSem.Release(1)
		result := h.srch.FixedDepth(p, depth)
		h.send(fmt.Sprintf("info depth %d score cp %d nodes %d", depth, int(result.Score), result.Nodes))
		h.sendResult(result)
	}()
}

func (h *Handler) sendResult(result search.Result) {
	if result.BestMove == types.NoMove {
		h.send("bestmove 0000")
		return
	}
	h.send("bestmove " + result.BestMove.UCI())
}

func (h *Handler) sendInfo(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logging.GetUciLog().Warning(msg)
	h.send("info string " + msg)
}

func (h *Handler) send(s string) {
	logging.GetUciLog().Infof(">> %s", s)
	_, _ = h.out.WriteString(s + "\n")
	_ = h.out.Flush()
}

// moveFromUCI resolves a long-algebraic move string against the legal
// moves of p - never trusting the wire string to build a Move directly,
// since only a generated move carries the correct captured-kind and
// castle/en-passant flags (spec §4.4).
func moveFromUCI(gen *movegen.Generator, p *position.Position, s string) (types.Move, bool) {
	for _, m := range gen.Legal(p) {
		if m.UCI() == s {
			return m, true
		}
	}
	return types.NoMove, false
}
