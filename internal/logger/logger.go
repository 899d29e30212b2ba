// SPDX-License-Identifier: MIT

// Package logger configures the global zerolog logger.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init points the global logger at a console writer on w with caller
// information and Unix timestamps, and sets the global level.
//
// level is a zerolog level name ("trace", "debug", "info", "warn",
// "error", "disabled"); the empty string means info.
//
// Example usage, inside main():
//
//	if err := logger.Init(cfg.LogLevel, os.Stderr); err != nil { ... }
func Init(level string, w io.Writer) error {
	lvl := zerolog.InfoLevel
	if level = strings.ToLower(strings.TrimSpace(level)); level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Caller().Logger()
	zerolog.SetGlobalLevel(lvl)

	log.Debug().Str("level", lvl.String()).Msg("logger initialised")

	return nil
}
