// Package logging provides structured logging with zap.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // console, json
	OutputPath string // stderr, stdout, or file path; ignored when a writer is given
}

// New builds a logger writing to w, or to cfg.OutputPath when w is nil.
// Unknown levels fall back to info. The returned AtomicLevel can be used
// to change the level afterwards.
func New(cfg Config, w io.Writer) (*zap.Logger, zap.AtomicLevel, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	atom := zap.NewAtomicLevelAt(level)

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "", "console":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.TimeKey = ""
		ec.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(ec)
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, atom, fmt.Errorf("unknown log format %q (want console or json)", cfg.Format)
	}

	var sink zapcore.WriteSyncer
	if w != nil {
		sink = zapcore.Lock(zapcore.AddSync(w))
	} else {
		var err error
		sink, err = openSink(cfg.OutputPath)
		if err != nil {
			return nil, atom, err
		}
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, atom),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return logger, atom, nil
}

func openSink(path string) (zapcore.WriteSyncer, error) {
	switch path {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	sink, _, err := zap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log output %s: %w", path, err)
	}
	return sink, nil
}

// Nop returns l, or a no-op logger when l is nil.
func Nop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
