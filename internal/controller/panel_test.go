package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/colock-player/internal/model"
)

func TestControlPanel_InitialRender(t *testing.T) {
	convert, copyCtl, play := &fakeControl{}, &fakeControl{}, &fakeControl{}
	NewControlPanel(convert, copyCtl, play, newTexts())

	assert.Equal(t, ControlState{Enabled: false, Label: "変換"}, convert.current())
	assert.True(t, copyCtl.current().Hidden)
	assert.True(t, play.current().Hidden)
	assert.False(t, play.current().Enabled)
}

func TestControlPanel_ConvertFollowsInput(t *testing.T) {
	convert := &fakeControl{}
	panel := NewControlPanel(convert, nil, nil, newTexts())

	// Enabling twice leaves the same state as enabling once
	panel.SetHasInput(true)
	once := convert.current()
	panel.SetHasInput(true)
	assert.Equal(t, once, convert.current())
	assert.True(t, convert.current().Enabled)

	panel.SetHasInput(false)
	assert.False(t, convert.current().Enabled)
}

func TestControlPanel_BusyRoundTrip(t *testing.T) {
	play := &fakeControl{}
	panel := NewControlPanel(nil, nil, play, newTexts())
	panel.MarkResult()
	idle := play.current()
	assert.Equal(t, ControlState{Enabled: true, Label: "再生"}, idle)

	panel.SetBusy(true)
	assert.Equal(t, ControlState{Enabled: false, Label: "生成中..."}, play.current())
	assert.Equal(t, model.AffordanceState{ConvertEnabled: false, PlayEnabled: false, PlayBusy: true}, panel.State())

	panel.SetBusy(false)
	assert.Equal(t, idle, play.current())
}

func TestControlPanel_Refresh(t *testing.T) {
	texts := newTexts()
	play := &fakeControl{}
	panel := NewControlPanel(nil, nil, play, texts)
	panel.MarkResult()

	texts.SetLanguage("en")
	panel.Refresh()
	assert.Equal(t, "Play", play.current().Label)
}
