/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package util provides small helpers shared by search and perft that
// aren't worth their own package.
package util

import (
	"math/bits"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Abs returns the absolute value of n, branchless.
func Abs(n int) int {
	y := n >> (bits.UintSize - 1)
	return (n ^ y) - y
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Nps computes nodes per second from a node count and elapsed duration.
func Nps(nodes uint64, duration time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (duration.Nanoseconds() + 1))
}

// FormatCount renders n with locale thousands separators, e.g.
// "4.865.609" under the German locale the teacher engine's diagnostics
// use - handy for perft output where counts run into the millions.
func FormatCount(n uint64) string {
	return out.Sprintf("%d", n)
}
