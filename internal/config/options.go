package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ytget/colock-player/internal/model"
)

// Default values
const (
	DefaultServerURL      = "http://localhost:8080"
	DefaultMinAudioBytes  = 100
	DefaultRequestTimeout = time.Duration(0)
	DefaultDiscardStale   = false
	DefaultLanguage       = "ja"
	DefaultPlayerCommand  = ""
)

// Bounds for the minimum audio size
const (
	MinAudioBytesLowerBound = 1
	MinAudioBytesUpperBound = 10 << 20
)

// Environment variables read by FromEnv
const (
	EnvServerURL     = "COLOCK_SERVER_URL"
	EnvLineType      = "COLOCK_LINE_TYPE"
	EnvMinAudioBytes = "COLOCK_MIN_AUDIO_BYTES"
	EnvTimeout       = "COLOCK_TIMEOUT"
	EnvDiscardStale  = "COLOCK_DISCARD_STALE"
	EnvPlayer        = "COLOCK_PLAYER"
	EnvLanguage      = "COLOCK_LANG"
)

// Field names one configurable value
type Field string

// Configurable fields
const (
	FieldServerURL     Field = "server_url"
	FieldLineType      Field = "line_type"
	FieldMinAudioBytes Field = "min_audio_bytes"
	FieldTimeout       Field = "timeout"
	FieldDiscardStale  Field = "discard_stale"
	FieldPlayer        Field = "player"
	FieldLanguage      Field = "language"
)

// Options is a snapshot of the runtime configuration
type Options struct {
	ServerURL       string
	DefaultLineType model.LineType
	MinAudioBytes   int
	RequestTimeout  time.Duration
	DiscardStale    bool
	Language        string
	PlayerCommand   string

	// explicit holds the fields supplied by the environment or flags
	explicit map[Field]bool
}

// MarkExplicit records that field was supplied by the user rather than
// taken from the defaults
func (o *Options) MarkExplicit(field Field) {
	if o.explicit == nil {
		o.explicit = make(map[Field]bool)
	}
	o.explicit[field] = true
}

// IsExplicit reports whether field was supplied by the user
func (o Options) IsExplicit(field Field) bool {
	return o.explicit[field]
}

// DefaultOptions returns the built-in configuration
func DefaultOptions() Options {
	return Options{
		ServerURL:       DefaultServerURL,
		DefaultLineType: model.DefaultLineType,
		MinAudioBytes:   DefaultMinAudioBytes,
		RequestTimeout:  DefaultRequestTimeout,
		DiscardStale:    DefaultDiscardStale,
		Language:        DefaultLanguage,
		PlayerCommand:   DefaultPlayerCommand,
	}
}

// ClampMinAudioBytes keeps the threshold within sane bounds
func ClampMinAudioBytes(n int) int {
	if n < MinAudioBytesLowerBound {
		return MinAudioBytesLowerBound
	}
	if n > MinAudioBytesUpperBound {
		return MinAudioBytesUpperBound
	}
	return n
}

// FromEnv loads an optional .env file and overlays COLOCK_* variables on the
// defaults. Variables already set in the process environment take precedence
// over the file.
func FromEnv(envFiles ...string) (Options, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Options{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Options, error) {
	opts := DefaultOptions()

	if v, ok := lookup(EnvServerURL); ok && strings.TrimSpace(v) != "" {
		opts.ServerURL = strings.TrimSpace(v)
		opts.MarkExplicit(FieldServerURL)
	}
	if v, ok := lookup(EnvLineType); ok && strings.TrimSpace(v) != "" {
		opts.DefaultLineType = model.LineType(strings.TrimSpace(v))
		opts.MarkExplicit(FieldLineType)
	}
	if v, ok := lookup(EnvMinAudioBytes); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Options{}, fmt.Errorf("invalid %s: %w", EnvMinAudioBytes, err)
		}
		opts.MinAudioBytes = ClampMinAudioBytes(n)
		opts.MarkExplicit(FieldMinAudioBytes)
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Options{}, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		opts.RequestTimeout = d
		opts.MarkExplicit(FieldTimeout)
	}
	if v, ok := lookup(EnvDiscardStale); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Options{}, fmt.Errorf("invalid %s: %w", EnvDiscardStale, err)
		}
		opts.DiscardStale = b
		opts.MarkExplicit(FieldDiscardStale)
	}
	if v, ok := lookup(EnvPlayer); ok {
		opts.PlayerCommand = strings.TrimSpace(v)
		opts.MarkExplicit(FieldPlayer)
	}
	if v, ok := lookup(EnvLanguage); ok && v != "" {
		opts.Language = v
		opts.MarkExplicit(FieldLanguage)
	}

	return opts, nil
}
