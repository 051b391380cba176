package controller

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ytget/colock-player/internal/locale"
	"github.com/ytget/colock-player/internal/model"
)

type notice struct {
	kind    NoticeKind
	message string
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (f *fakeNotifier) Notify(kind NoticeKind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, notice{kind: kind, message: message})
}

func (f *fakeNotifier) all() []notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notice(nil), f.notices...)
}

func (f *fakeNotifier) last() notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.notices) == 0 {
		return notice{}
	}
	return f.notices[len(f.notices)-1]
}

type fakeControl struct {
	mu     sync.Mutex
	states []ControlState
}

func (f *fakeControl) SetState(state ControlState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = append(f.states, state)
}

func (f *fakeControl) current() ControlState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.states) == 0 {
		return ControlState{}
	}
	return f.states[len(f.states)-1]
}

func (f *fakeControl) history() []ControlState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ControlState(nil), f.states...)
}

type fakeClipboard struct {
	content string
}

func (f *fakeClipboard) SetContent(content string) {
	f.content = content
}

type converterFunc func(ctx context.Context, req model.ConversionRequest) (string, error)

func (f converterFunc) GetColockLanguage(ctx context.Context, req model.ConversionRequest) (string, error) {
	return f(ctx, req)
}

type generatorFunc func(ctx context.Context, req model.VoiceRequest) (*model.AudioAsset, error)

func (f generatorFunc) GenerateVoice(ctx context.Context, req model.VoiceRequest) (*model.AudioAsset, error) {
	return f(ctx, req)
}

type fakeHandle struct {
	path     string
	releases atomic.Int32
}

func (h *fakeHandle) Path() string {
	return h.path
}

func (h *fakeHandle) Release() error {
	h.releases.Add(1)
	return nil
}

// handleRecorder hands out fakeHandles and remembers them
type handleRecorder struct {
	mu      sync.Mutex
	handles []*fakeHandle
	err     error
}

func (r *handleRecorder) factory() HandleFactory {
	return func(asset *model.AudioAsset) (PlaybackHandle, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.err != nil {
			return nil, r.err
		}
		h := &fakeHandle{path: "/tmp/voice-test.wav"}
		r.handles = append(r.handles, h)
		return h, nil
	}
}

func (r *handleRecorder) created() []*fakeHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*fakeHandle(nil), r.handles...)
}

// fakePlayer captures the terminal callback so tests decide when playback ends
type fakePlayer struct {
	mu       sync.Mutex
	startErr error
	paths    []string
	done     func(model.TerminalEvent, error)
}

func (p *fakePlayer) Play(_ context.Context, path string, done func(model.TerminalEvent, error)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.startErr != nil {
		return p.startErr
	}
	p.paths = append(p.paths, path)
	p.done = done
	return nil
}

func (p *fakePlayer) end(event model.TerminalEvent, err error) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	done(event, err)
}

func newTexts() *locale.Localization {
	l := locale.NewLocalization()
	l.SetLanguage("ja")
	return l
}

func audioBytes(n int) []byte {
	data := make([]byte, n)
	copy(data, "RIFF")
	return data
}

// voiceFixture wires a voice controller with fakes around a store holding text
type voiceFixture struct {
	store    *ResultStore
	play     *fakeControl
	panel    *ControlPanel
	notifier *fakeNotifier
	handles  *handleRecorder
	player   *fakePlayer
	texts    *locale.Localization
	voice    *VoicePlaybackController
}

func newVoiceFixture(generator generatorFunc, resultText string, opts ...Option) *voiceFixture {
	f := &voiceFixture{
		store:    NewResultStore(),
		play:     &fakeControl{},
		notifier: &fakeNotifier{},
		handles:  &handleRecorder{},
		player:   &fakePlayer{},
		texts:    newTexts(),
	}
	if resultText != "" {
		f.store.set(model.NewTextResult(resultText))
	}
	f.panel = NewControlPanel(nil, nil, f.play, f.texts)
	if resultText != "" {
		f.panel.MarkResult()
	}
	f.voice = NewVoicePlaybackController(generator, f.store, f.handles.factory(), f.player, f.panel, f.notifier, f.texts, opts...)
	return f
}
