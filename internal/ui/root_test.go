package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/colock-player/internal/api"
	"github.com/ytget/colock-player/internal/config"
	"github.com/ytget/colock-player/internal/controller"
	"github.com/ytget/colock-player/internal/model"
	"github.com/ytget/colock-player/internal/platform"
)

const (
	waitTimeout = 2 * time.Second
	waitTick    = 10 * time.Millisecond
)

type recordingPlayer struct {
	mu    sync.Mutex
	paths []string
	done  func(model.TerminalEvent, error)
}

func (p *recordingPlayer) Play(_ context.Context, path string, done func(model.TerminalEvent, error)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paths = append(p.paths, path)
	p.done = done
	return nil
}

func (p *recordingPlayer) finish(event model.TerminalEvent) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	done(event, nil)
}

func colockServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(api.ConvertPath, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get(api.ParamInputString) == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"コンニチハ"}`))
	})
	mux.HandleFunc(api.VoicePath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
		data := make([]byte, 1024)
		copy(data, "RIFF\x00\x00\x00\x00WAVEfmt ")
		_, _ = w.Write(data)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestRootUI(t *testing.T, serverURL string, player controller.Player) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	config.NewSettings(app).SetServerURL(serverURL)

	handles := controller.PlatformHandles(platform.NewHandleStore(t.TempDir(), nil))
	factory := func(string) (controller.Player, error) { return player, nil }
	return NewRootUI(app.NewWindow("test"), app, handles, factory, nil)
}

func TestRootUI_InitialAffordances(t *testing.T) {
	ui := newTestRootUI(t, "http://127.0.0.1:1", &recordingPlayer{})

	require.Eventually(t, func() bool {
		return ui.convertBtn.Disabled() && !ui.copyBtn.Visible() && !ui.playBtn.Visible()
	}, waitTimeout, waitTick)
	assert.Equal(t, "ここに変換結果が表示されます", ui.resultLabel.Text)
	assert.Equal(t, string(model.DefaultLineType), ui.lineTypeSelect.Selected)
}

func TestRootUI_InputTogglesConvert(t *testing.T) {
	ui := newTestRootUI(t, "http://127.0.0.1:1", &recordingPlayer{})

	ui.inputEntry.SetText("こんにちは")
	require.Eventually(t, func() bool { return !ui.convertBtn.Disabled() }, waitTimeout, waitTick)

	ui.inputEntry.SetText("")
	require.Eventually(t, func() bool { return ui.convertBtn.Disabled() }, waitTimeout, waitTick)

	// Whitespace is input like any other text
	ui.inputEntry.SetText("   ")
	require.Eventually(t, func() bool { return !ui.convertBtn.Disabled() }, waitTimeout, waitTick)
}

func TestRootUI_ConvertCopyAndPlay(t *testing.T) {
	server := colockServer(t)
	player := &recordingPlayer{}
	ui := newTestRootUI(t, server.URL, player)

	result := ui.convert("こんにちは", "A")
	require.False(t, result.IsError())

	require.Eventually(t, func() bool { return ui.resultLabel.Text == "コンニチハ" }, waitTimeout, waitTick)
	require.Eventually(t, func() bool { return ui.copyBtn.Visible() && ui.playBtn.Visible() }, waitTimeout, waitTick)

	ui.onCopyClick()
	assert.Equal(t, "コンニチハ", ui.app.Clipboard().Content())

	require.NoError(t, ui.play())
	require.Eventually(t, func() bool { return ui.playBtn.Disabled() && ui.playBtn.Text == "生成中..." }, waitTimeout, waitTick)
	require.Len(t, player.paths, 1)

	player.finish(model.PlaybackEnded)
	require.Eventually(t, func() bool { return !ui.playBtn.Disabled() && ui.playBtn.Text == "再生" }, waitTimeout, waitTick)
}

func TestRootUI_ConversionError(t *testing.T) {
	server := colockServer(t)
	ui := newTestRootUI(t, server.URL, &recordingPlayer{})

	result := ui.convert("fail", "pa")
	require.True(t, result.IsError())

	require.Eventually(t, func() bool { return ui.resultLabel.Text == "エラーが発生しました" }, waitTimeout, waitTick)
	assert.False(t, ui.playBtn.Visible())
	assert.Equal(t, model.KindPrecondition, model.KindOf(ui.play()))
}

func TestRootUI_PlayerUnavailable(t *testing.T) {
	server := colockServer(t)
	app := test.NewApp()
	t.Cleanup(app.Quit)
	config.NewSettings(app).SetServerURL(server.URL)
	handles := controller.PlatformHandles(platform.NewHandleStore(t.TempDir(), nil))
	factory := func(string) (controller.Player, error) { return nil, errors.New("no player") }
	ui := NewRootUI(app.NewWindow("test"), app, handles, factory, nil)

	ui.convert("こんにちは", "pa")
	err := ui.play()

	assert.Equal(t, model.KindPlayback, model.KindOf(err))
	require.Eventually(t, func() bool { return !ui.playBtn.Disabled() }, waitTimeout, waitTick)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui := newTestRootUI(t, "http://127.0.0.1:1", &recordingPlayer{})

	ui.onLanguageChange("en")

	assert.Equal(t, "en", ui.settings.GetLanguage())
	assert.Equal(t, "Colock Player", ui.window.Title())
	assert.Equal(t, "The converted text appears here", ui.resultLabel.Text)
	require.Eventually(t, func() bool { return ui.convertBtn.Text == "Convert" }, waitTimeout, waitTick)
}

func TestRootUI_LineTypeRemembered(t *testing.T) {
	ui := newTestRootUI(t, "http://127.0.0.1:1", &recordingPlayer{})

	ui.lineTypeSelect.SetSelected("ka")

	assert.Equal(t, model.LineType("ka"), ui.settings.GetLineType())
}
