// Package logging builds the zap loggers shared by the GUI and the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction
type Options struct {
	// Debug enables debug level output
	Debug bool
	// JSON switches to the production JSON encoder
	JSON bool
}

// New builds a sugared logger. The console encoder is used unless JSON is set.
func New(opts Options) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if opts.JSON {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// NewOrNop is New for program entry points; it falls back to a no-op logger
// when the configuration cannot be built.
func NewOrNop(opts Options) *zap.SugaredLogger {
	logger, err := New(opts)
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger
}

// OrNop returns logger, or a no-op logger when it is nil
func OrNop(logger *zap.SugaredLogger) *zap.SugaredLogger {
	if logger == nil {
		return zap.NewNop().Sugar()
	}
	return logger
}
