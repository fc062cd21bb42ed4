// +build debug

/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package assert

import "fmt"

// DEBUG is true when built with the "debug" build tag.
const DEBUG = true

// Assert panics with msg if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
