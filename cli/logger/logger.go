package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level  string
	File   string
	Format string
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return slog.LevelWarn, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New builds a logger writing to stderr unless a file is given, so that
// logs never interleave with the prompt on stdout.
func New(options *Options) *slog.Logger {
	return newLogger(options, os.Stderr)
}

func newLogger(options *Options, stderr io.Writer) *slog.Logger {
	level, ok := level(options.Level)
	if !ok {
		options.Level = ""
		logger := newLogger(options, stderr)
		logger.Warn("could not parse logger level")
		return logger
	}
	opts := slog.HandlerOptions{Level: level}

	var output io.Writer
	switch options.File {
	case "", "-":
		output = stderr
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		var err error
		output, err = os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			options.File = ""
			logger := newLogger(options, stderr)
			logger.Warn("could not open logger file", "err", err)
			return logger
		}
	}

	switch strings.ToLower(options.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(output, &opts))
	case "json":
		return slog.New(slog.NewJSONHandler(output, &opts))
	default:
		options.Format = "text"
		logger := newLogger(options, stderr)
		logger.Warn("could not parse logger format")
		return logger
	}
}
