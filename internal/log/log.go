// Package log builds the process-wide zerolog logger.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/roadpath/internal/config"
)

type Logger = zerolog.Logger

// New configures zerolog from cfg: an unknown level falls back to info and
// Pretty switches to the human-readable console writer on stderr.
func New(cfg config.Config) Logger {
	return newTo(os.Stderr, cfg)
}

func newTo(w io.Writer, cfg config.Config) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Logging.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	l := zerolog.New(w).With().Timestamp().Str("svc", "roadpath").Logger()
	log.Logger = l
	return l
}
