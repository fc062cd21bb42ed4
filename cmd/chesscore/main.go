/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package main

import (
	"flag"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cjkessler/chesscore/internal/config"
	"github.com/cjkessler/chesscore/internal/fen"
	"github.com/cjkessler/chesscore/internal/logging"
	"github.com/cjkessler/chesscore/internal/movegen"
	"github.com/cjkessler/chesscore/internal/uci"
	"github.com/cjkessler/chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

// version is set at build time via -ldflags; "dev" otherwise, grounded
// in the teacher's internal/version.
var version = "dev"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", config.ConfFile, "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	fenStr := flag.String("fen", fen.StartFEN, "fen of the position used by -perft")
	perft := flag.Int("perft", 0, "runs perft at depths 1..N on -fen and prints leaf counts and timing")
	depth := flag.Int("depth", 0, "default search depth for the UCI handler's go command (0 keeps the built-in default)")
	flag.Parse()

	if *versionInfo {
		out.Printf("chesscore %s\n", version)
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.Settings.Log.LogLevel = lvl
	}
	if *depth > 0 {
		config.Settings.Search.DefaultDepth = *depth
	}
	logging.GetLog()

	if *perft != 0 {
		runPerft(*fenStr, *perft)
		return
	}

	uci.NewHandler().Loop()
}

func runPerft(fenStr string, maxDepth int) {
	p, err := fen.Decode(fenStr)
	if err != nil {
		out.Printf("bad -fen: %v\n", err)
		os.Exit(1)
	}
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		nodes := movegen.Perft(p.Clone(), d)
		elapsed := time.Since(start)
		out.Printf("depth %d: %s nodes in %s (%s n/s)\n",
			d, util.FormatCount(nodes), elapsed, util.FormatCount(util.Nps(nodes, elapsed)))
	}
}
