package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/colock-player/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL      = "server_url"
	KeyLineType       = "line_type"
	KeyMinAudioBytes  = "min_audio_bytes"
	KeyRequestTimeout = "request_timeout_ms"
	KeyDiscardStale   = "discard_stale_responses"
	KeyLanguage       = "app_language"
	KeyPlayerCommand  = "player_command"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured service root
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the service root
func (s *Settings) SetServerURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetLineType returns the last selected line type
func (s *Settings) GetLineType() model.LineType {
	lt := s.app.Preferences().String(KeyLineType)
	if lt == "" {
		s.SetLineType(model.DefaultLineType)
		return model.DefaultLineType
	}
	return model.LineType(lt)
}

// SetLineType remembers the selected line type
func (s *Settings) SetLineType(lt model.LineType) {
	s.app.Preferences().SetString(KeyLineType, string(lt))
}

// GetMinAudioBytes returns the minimum accepted voice payload size
func (s *Settings) GetMinAudioBytes() int {
	value := s.app.Preferences().Int(KeyMinAudioBytes)
	if value <= 0 {
		s.SetMinAudioBytes(DefaultMinAudioBytes)
		return DefaultMinAudioBytes
	}
	return value
}

// SetMinAudioBytes sets the minimum accepted voice payload size
func (s *Settings) SetMinAudioBytes(n int) {
	s.app.Preferences().SetInt(KeyMinAudioBytes, ClampMinAudioBytes(n))
}

// GetRequestTimeout returns the per-request timeout, zero meaning none
func (s *Settings) GetRequestTimeout() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyRequestTimeout, int(DefaultRequestTimeout/time.Millisecond))
	if ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// SetRequestTimeout sets the per-request timeout
func (s *Settings) SetRequestTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, int(d/time.Millisecond))
}

// GetDiscardStale returns whether responses superseded by a newer request are dropped
func (s *Settings) GetDiscardStale() bool {
	return s.app.Preferences().BoolWithFallback(KeyDiscardStale, DefaultDiscardStale)
}

// SetDiscardStale sets the stale-response policy
func (s *Settings) SetDiscardStale(discard bool) {
	s.app.Preferences().SetBool(KeyDiscardStale, discard)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetPlayerCommand returns the custom player command line, empty for auto-detection
func (s *Settings) GetPlayerCommand() string {
	return s.app.Preferences().StringWithFallback(KeyPlayerCommand, DefaultPlayerCommand)
}

// SetPlayerCommand sets the custom player command line
func (s *Settings) SetPlayerCommand(command string) {
	s.app.Preferences().SetString(KeyPlayerCommand, strings.TrimSpace(command))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"ja":     "日本語",
		"en":     "English",
	}
}

// Options returns a snapshot of the stored settings
func (s *Settings) Options() Options {
	return Options{
		ServerURL:       s.GetServerURL(),
		DefaultLineType: s.GetLineType(),
		MinAudioBytes:   s.GetMinAudioBytes(),
		RequestTimeout:  s.GetRequestTimeout(),
		DiscardStale:    s.GetDiscardStale(),
		Language:        s.GetLanguage(),
		PlayerCommand:   s.GetPlayerCommand(),
	}
}

// Apply stores the explicitly supplied values of opts, leaving every other
// setting as it is
func (s *Settings) Apply(opts Options) {
	if opts.IsExplicit(FieldServerURL) {
		s.SetServerURL(opts.ServerURL)
	}
	if opts.IsExplicit(FieldLineType) {
		s.SetLineType(opts.DefaultLineType)
	}
	if opts.IsExplicit(FieldMinAudioBytes) {
		s.SetMinAudioBytes(opts.MinAudioBytes)
	}
	if opts.IsExplicit(FieldTimeout) {
		s.SetRequestTimeout(opts.RequestTimeout)
	}
	if opts.IsExplicit(FieldDiscardStale) {
		s.SetDiscardStale(opts.DiscardStale)
	}
	if opts.IsExplicit(FieldPlayer) {
		s.SetPlayerCommand(opts.PlayerCommand)
	}
	if opts.IsExplicit(FieldLanguage) {
		s.SetLanguage(opts.Language)
	}
}
