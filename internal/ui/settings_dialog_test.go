package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/colock-player/internal/config"
	"github.com/ytget/colock-player/internal/locale"
	"github.com/ytget/colock-player/internal/model"
)

func TestSettingsDialog_LoadAndSave(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(settings, locale.NewLocalization(), window, func() { saved = true })
	sd.Show()

	assert.Equal(t, config.DefaultServerURL, sd.serverURLEntry.Text)
	assert.Equal(t, "100", sd.minAudioEntry.Text)
	assert.Equal(t, "0", sd.timeoutEntry.Text)
	assert.Equal(t, string(model.DefaultLineType), sd.lineTypeSelect.Selected)

	sd.serverURLEntry.SetText("http://colock.local:8080/")
	sd.minAudioEntry.SetText("2048")
	sd.timeoutEntry.SetText("20")
	sd.playerCommandEntry.SetText("mpv --no-video")
	sd.lineTypeSelect.SetSelected("ma")
	sd.languageSelect.SetSelected("en")
	sd.discardStaleCheck.SetChecked(true)
	sd.onSave(true)

	assert.True(t, saved)
	assert.Equal(t, "http://colock.local:8080", settings.GetServerURL())
	assert.Equal(t, 2048, settings.GetMinAudioBytes())
	assert.Equal(t, 20*time.Second, settings.GetRequestTimeout())
	assert.Equal(t, "mpv --no-video", settings.GetPlayerCommand())
	assert.Equal(t, model.LineType("ma"), settings.GetLineType())
	assert.Equal(t, "en", settings.GetLanguage())
	assert.True(t, settings.GetDiscardStale())
}

func TestSettingsDialog_CancelAndInvalidNumbers(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	settings := config.NewSettings(app)

	sd := NewSettingsDialog(settings, locale.NewLocalization(), app.NewWindow("test"), nil)
	sd.Show()

	sd.serverURLEntry.SetText("http://ignored")
	sd.onSave(false)
	assert.Equal(t, config.DefaultServerURL, settings.GetServerURL())

	sd.minAudioEntry.SetText("lots")
	sd.timeoutEntry.SetText("")
	sd.onSave(true)
	assert.Equal(t, config.DefaultMinAudioBytes, settings.GetMinAudioBytes())
	assert.Equal(t, time.Duration(0), settings.GetRequestTimeout())
}
