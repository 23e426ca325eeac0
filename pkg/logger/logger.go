package logger

import (
	"context"
	"io"
	"os"

	"github.com/Gthulhu/topology/config"
	"github.com/rs/zerolog"
)

// InitLogger installs the process logger, writing to stdout, as zerolog's default context logger.
func InitLogger(cfg config.LoggingConfig) *zerolog.Logger {
	return InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter is InitLogger with an explicit destination. One-shot
// commands log to stderr so stdout carries only their output.
func InitLoggerWithWriter(cfg config.LoggingConfig, out io.Writer) *zerolog.Logger {
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
