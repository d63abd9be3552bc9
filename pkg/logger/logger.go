// Package logger configures the global zerolog logger. Diagnostics go to
// stderr so command output on stdout stays pipeable.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitWriter sets the global level and output format, writing to w.
// Unknown levels fall back to info; any format other than "json" writes
// human-readable lines.
func InitWriter(w io.Writer, level string, format string) {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
}
