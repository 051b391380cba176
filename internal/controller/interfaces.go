package controller

import (
	"context"

	"github.com/ytget/colock-player/internal/model"
	"github.com/ytget/colock-player/internal/platform"
)

// NoticeKind is the severity of a transient notification
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notifier shows transient messages to the user
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// ControlState is the full rendered state of one control
type ControlState struct {
	Enabled bool
	Label   string
	Hidden  bool
}

// Control is a button-like widget driven by the controllers
type Control interface {
	SetState(state ControlState)
}

// Clipboard receives copied result text
type Clipboard interface {
	SetContent(content string)
}

// Texts resolves localized strings
type Texts interface {
	GetText(key string) string
}

// Player plays an audio file. done must be called exactly once with the
// terminal event unless Play itself returns an error.
type Player interface {
	Play(ctx context.Context, path string, done func(model.TerminalEvent, error)) error
}

// PlaybackHandle is the ephemeral reference the player reads from
type PlaybackHandle interface {
	Path() string
	Release() error
}

// HandleFactory derives a playback handle from an audio asset
type HandleFactory func(asset *model.AudioAsset) (PlaybackHandle, error)

// PlatformHandles adapts a platform.HandleStore to a HandleFactory
func PlatformHandles(store *platform.HandleStore) HandleFactory {
	return func(asset *model.AudioAsset) (PlaybackHandle, error) {
		h, err := store.Create(asset)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(kind NoticeKind, message string)

// Notify calls f(kind, message)
func (f NotifierFunc) Notify(kind NoticeKind, message string) {
	f(kind, message)
}
