/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package logging is a thin helper over "github.com/op/go-logging" so
// the rest of the engine can grab a preconfigured, leveled logger in one
// line instead of repeating backend/formatter setup everywhere.
package logging

import (
	golog "log"
	"os"

	"github.com/op/go-logging"

	"github.com/cjkessler/chesscore/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger

	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

func backend(level int) logging.Backend {
	b := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	f := logging.NewBackendFormatter(b, format)
	leveled := logging.AddModuleLevel(f)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the standard package-wide logger, configured from
// config.Settings.Log.LogLevel.
func GetLog() *logging.Logger {
	standardLog.SetBackend(backend(config.Settings.Log.LogLevel))
	return standardLog
}

// GetSearchLog returns the logger used by the search driver.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(config.Settings.Log.LogLevel))
	return searchLog
}

// GetUciLog returns the logger used for controller protocol traffic.
func GetUciLog() *logging.Logger {
	uciLog.SetBackend(backend(config.Settings.Log.LogLevel))
	return uciLog
}
