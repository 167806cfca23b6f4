// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Options controls Configure.
type Options struct {
	Level   string
	JSON    bool
	DevMode bool
}

// Configure replaces log.Logger. An unparsable level falls back to info.
func Configure(opts Options) {
	configure(os.Stdout, opts)
}

func configure(out io.Writer, opts Options) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if opts.DevMode && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	writer := out
	if !opts.JSON {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339Nano,
		}
	}

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(level)
}
