package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/ytget/colock-player/internal/api"
	"github.com/ytget/colock-player/internal/locale"
	"github.com/ytget/colock-player/internal/model"
)

var (
	// ErrBusy is returned when Play is activated while a voice cycle is running
	ErrBusy = errors.New("voice playback already in progress")

	// ErrAudioTooSmall is the cause of payload errors for undersized audio
	ErrAudioTooSmall = errors.New("audio payload below minimum size")
)

// VoicePlaybackController requests synthesized audio for the current result
// and plays it. A cycle moves Idle -> Requesting -> Playing -> Idle, or
// straight back to Idle when the request fails.
type VoicePlaybackController struct {
	generator api.VoiceGenerator
	store     *ResultStore
	handles   HandleFactory
	player    Player
	panel     *ControlPanel
	notifier  Notifier
	texts     Texts
	opts      options

	mu       sync.Mutex
	state    model.PlaybackState
	onUpdate func(model.PlaybackState)
	onFinish func(model.TerminalEvent, error)
}

// voiceCycle is one activation of the play control
type voiceCycle struct {
	token  string
	once   sync.Once
	handle PlaybackHandle

	// mu orders the start notice against finish
	mu       sync.Mutex
	finished bool
}

// NewVoicePlaybackController creates a voice playback controller. panel may be nil.
func NewVoicePlaybackController(generator api.VoiceGenerator, store *ResultStore, handles HandleFactory, player Player, panel *ControlPanel, notifier Notifier, texts Texts, opts ...Option) *VoicePlaybackController {
	return &VoicePlaybackController{
		generator: generator,
		store:     store,
		handles:   handles,
		player:    player,
		panel:     panel,
		notifier:  notifier,
		texts:     texts,
		opts:      buildOptions(opts),
		state:     model.PlaybackIdle,
	}
}

// SetUpdateCallback sets the callback function for state changes
func (v *VoicePlaybackController) SetUpdateCallback(callback func(model.PlaybackState)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onUpdate = callback
}

// SetFinishCallback sets the callback invoked with the terminal event of
// every cycle, after its notices have been sent
func (v *VoicePlaybackController) SetFinishCallback(callback func(model.TerminalEvent, error)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onFinish = callback
}

// State returns the current playback state
func (v *VoicePlaybackController) State() model.PlaybackState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Play runs one voice cycle. It returns once playback has started or the
// cycle has failed; the end of playback is reported through the callback.
func (v *VoicePlaybackController) Play(ctx context.Context) (err error) {
	text := v.store.Text()
	if text == "" {
		v.notifier.Notify(NoticeWarning, v.texts.GetText(locale.KeyNothingToPlay))
		return model.NewError(model.KindPrecondition, api.OpVoice, "", model.ErrEmptyText)
	}

	if !v.begin() {
		return ErrBusy
	}

	cycle := &voiceCycle{token: generateToken()}
	logger := v.opts.logger.With("token", cycle.token)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("voice playback panicked: %v", r)
			logger.Errorf("Recovered from panic: %v", r)
			v.finish(cycle, model.PlaybackFailed, err)
		}
	}()

	asset, err := v.request(ctx, text)
	if err != nil {
		logger.Errorw("Voice generation failed", errorFields(err)...)
		v.finish(cycle, model.PlaybackFailed, err)
		return err
	}

	if asset.Size() < v.opts.minAudioBytes {
		err = model.NewError(model.KindPayload, api.OpVoice, "",
			fmt.Errorf("%w: got %s, need %d bytes", ErrAudioTooSmall, humanize.Bytes(uint64(asset.Size())), v.opts.minAudioBytes))
		logger.Errorw("Voice payload rejected", errorFields(err)...)
		v.finish(cycle, model.PlaybackFailed, err)
		return err
	}

	handle, err := v.handles(asset)
	if err != nil {
		err = model.NewError(model.KindPlayback, api.OpVoice, "", err)
		logger.Errorw("Failed to create playback handle", errorFields(err)...)
		v.finish(cycle, model.PlaybackFailed, err)
		return err
	}
	cycle.handle = handle
	v.setState(model.PlaybackPlaying)

	if err := v.player.Play(ctx, handle.Path(), func(event model.TerminalEvent, cause error) {
		if event == model.PlaybackFailed {
			cause = model.NewError(model.KindPlayback, api.OpVoice, "", cause)
			logger.Errorw("Playback failed", errorFields(cause)...)
		}
		v.finish(cycle, event, cause)
	}); err != nil {
		err = model.NewError(model.KindPlayback, api.OpVoice, "", err)
		logger.Errorw("Failed to start playback", errorFields(err)...)
		v.finish(cycle, model.PlaybackFailed, err)
		return err
	}

	logger.Infof("Playback started: %s", humanize.Bytes(uint64(asset.Size())))
	cycle.whileRunning(func() {
		v.notifier.Notify(NoticeSuccess, v.texts.GetText(locale.KeyPlaybackStarted))
	})
	return nil
}

// whileRunning calls fn unless the cycle has already finished. finish
// waits for fn to return.
func (c *voiceCycle) whileRunning(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.finished {
		fn()
	}
}

// begin moves Idle -> Requesting, reporting false if a cycle is running
func (v *VoicePlaybackController) begin() bool {
	v.mu.Lock()
	if v.state != model.PlaybackIdle {
		v.mu.Unlock()
		return false
	}
	v.state = model.PlaybackRequesting
	callback := v.onUpdate
	v.mu.Unlock()

	if v.panel != nil {
		v.panel.SetBusy(true)
	}
	if callback != nil {
		callback(model.PlaybackRequesting)
	}
	return true
}

func (v *VoicePlaybackController) request(ctx context.Context, text string) (*model.AudioAsset, error) {
	reqCtx, cancel := v.opts.requestContext(ctx)
	defer cancel()
	return v.generator.GenerateVoice(reqCtx, model.VoiceRequest{Text: text})
}

// finish is the single terminal transition of a cycle. It releases the
// handle, restores the play control and returns to Idle exactly once.
func (v *VoicePlaybackController) finish(cycle *voiceCycle, event model.TerminalEvent, cause error) {
	cycle.once.Do(func() {
		cycle.mu.Lock()
		cycle.finished = true
		cycle.mu.Unlock()

		logger := v.opts.logger.With("token", cycle.token)

		if cycle.handle != nil {
			if err := cycle.handle.Release(); err != nil {
				logger.Warnf("Failed to release playback handle: %v", err)
			}
		}

		v.setState(model.PlaybackIdle)
		if v.panel != nil {
			v.panel.SetBusy(false)
		}

		if event == model.PlaybackFailed {
			v.notifier.Notify(NoticeError, v.messageFor(cause))
		} else {
			logger.Infof("Playback %s", event)
		}

		v.mu.Lock()
		callback := v.onFinish
		v.mu.Unlock()
		if callback != nil {
			callback(event, cause)
		}
	})
}

func (v *VoicePlaybackController) setState(state model.PlaybackState) {
	v.mu.Lock()
	v.state = state
	callback := v.onUpdate
	v.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}

// messageFor picks the most specific user-facing message for err
func (v *VoicePlaybackController) messageFor(err error) string {
	switch model.KindOf(err) {
	case model.KindStatus:
		if msg := model.UserMessage(err); msg != "" {
			return msg
		}
	case model.KindPayload:
		if errors.Is(err, ErrAudioTooSmall) {
			return v.texts.GetText(locale.KeyAudioTooSmall)
		}
	case model.KindPlayback:
		return v.texts.GetText(locale.KeyPlaybackFailed)
	}
	return v.texts.GetText(locale.KeyVoiceFailed)
}
