package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/colock-player/internal/controller"
)

func TestButtonControl_Apply(t *testing.T) {
	test.NewApp()
	button := widget.NewButton("再生", nil)
	control := NewButtonControl(button)

	control.apply(controller.ControlState{Enabled: false, Label: "生成中...", Hidden: false})
	assert.True(t, button.Disabled())
	assert.Equal(t, "生成中...", button.Text)
	assert.True(t, button.Visible())

	control.apply(controller.ControlState{Enabled: true, Label: "再生", Hidden: true})
	assert.False(t, button.Disabled())
	assert.Equal(t, "再生", button.Text)
	assert.False(t, button.Visible())
}

func TestToastNotifier_Show(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := app.NewWindow("test")
	n := NewToastNotifier(window)

	assert.False(t, n.Container().Visible())

	tests := []struct {
		kind       controller.NoticeKind
		importance widget.Importance
		icon       string
	}{
		{controller.NoticeError, widget.DangerImportance, IconError},
		{controller.NoticeWarning, widget.WarningImportance, IconWarning},
		{controller.NoticeSuccess, widget.SuccessImportance, IconSuccess},
		{controller.NoticeInfo, widget.MediumImportance, IconInfo},
	}

	for _, tt := range tests {
		n.show(tt.kind, "message")
		assert.Equal(t, tt.icon+" message", n.Message())
		assert.Equal(t, tt.importance, n.label.Importance)
		assert.True(t, n.Container().Visible())
	}

	n.hide()
	assert.False(t, n.Container().Visible())
}
