package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/colock-player/internal/controller"
)

func TestTerminalNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf, NewStyles(DefaultTheme))

	n.Notify(controller.NoticeSuccess, "コピーしました")
	n.Notify(controller.NoticeError, "エラーが発生しました")
	n.Notify(controller.NoticeWarning, "再生するテキストがありません")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "✓ コピーしました")
	assert.Contains(t, lines[1], "✗ エラーが発生しました")
	assert.Contains(t, lines[2], "! 再生するテキストがありません")
}

func TestTerminalControl_PrintsChangesOnly(t *testing.T) {
	var buf bytes.Buffer
	c := NewTerminalControl("play", &buf, NewStyles(DefaultTheme))

	c.SetState(controller.ControlState{Label: "再生", Hidden: true})
	assert.Empty(t, buf.String(), "hidden controls print nothing")

	c.SetState(controller.ControlState{Enabled: false, Label: "生成中..."})
	c.SetState(controller.ControlState{Enabled: false, Label: "生成中..."})
	c.SetState(controller.ControlState{Enabled: true, Label: "再生"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Contains(t, lines[0], "[play] 生成中... …")
	assert.Contains(t, lines[1], "[play] 再生")
	assert.Equal(t, controller.ControlState{Enabled: true, Label: "再生"}, c.State())
}
