/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package config holds the small set of globally available configuration
// values this core actually consumes: search depth and log level/path.
// The teacher engine's config also covers transposition table size,
// opening book path/format and a dozen pruning toggles; none of those
// have a home here since the corresponding features are explicit
// Non-goals (see SPEC_FULL.md's DOMAIN STACK table / DESIGN.md).
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the TOML config file, relative to the working
// directory unless overridden by a command line flag before Setup runs.
var ConfFile = "./chesscore.toml"

// LogLevel numbering mirrors github.com/op/go-logging's Level constants:
// 0=CRITICAL 1=ERROR 2=WARNING 3=NOTICE 4=INFO 5=DEBUG.
var LogLevels = map[string]int{
	"critical": 0, "error": 1, "warning": 2, "notice": 3, "info": 4, "debug": 5,
}

type searchConfiguration struct {
	// DefaultDepth is the fixed search depth used by "go" when the UCI
	// command does not itself specify one.
	DefaultDepth int
}

type logConfiguration struct {
	LogLevel int
	LogPath  string
}

type conf struct {
	Search searchConfiguration
	Log    logConfiguration
}

// Settings is the global configuration, read from ConfFile (if present)
// or left at its compiled-in defaults.
var Settings = conf{
	Search: searchConfiguration{DefaultDepth: 5},
	Log:    logConfiguration{LogLevel: 4, LogPath: "./logs"},
}

var initialized = false

// Setup reads the configuration file named by ConfFile, if it exists,
// overlaying any fields it sets onto the compiled-in defaults above. A
// missing or unreadable file is not fatal - the defaults stand - per
// spec §7's "errors in table initialization are... treated as build-time
// concerns": the same tolerance extends to optional configuration.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found or invalid, using defaults:", err)
	}
	initialized = true
}
