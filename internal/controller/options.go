package controller

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/colock-player/internal/config"
)

type options struct {
	logger        *zap.SugaredLogger
	timeout       time.Duration
	discardStale  bool
	minAudioBytes int
}

// Option configures a controller
type Option func(*options)

// WithLogger sets the logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRequestTimeout bounds every network call. Zero means no timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithDiscardStale drops conversion responses superseded by a newer request
func WithDiscardStale(discard bool) Option {
	return func(o *options) {
		o.discardStale = discard
	}
}

// WithMinAudioBytes sets the smallest voice payload accepted for playback
func WithMinAudioBytes(n int) Option {
	return func(o *options) {
		o.minAudioBytes = config.ClampMinAudioBytes(n)
	}
}

// FromConfig maps configuration options onto controller options
func FromConfig(cfg config.Options) []Option {
	return []Option{
		WithRequestTimeout(cfg.RequestTimeout),
		WithDiscardStale(cfg.DiscardStale),
		WithMinAudioBytes(cfg.MinAudioBytes),
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:        zap.NewNop().Sugar(),
		minAudioBytes: config.DefaultMinAudioBytes,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.timeout > 0 {
		return context.WithTimeout(ctx, o.timeout)
	}
	return context.WithCancel(ctx)
}
