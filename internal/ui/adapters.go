package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/colock-player/internal/controller"
)

// ButtonControl renders controller state onto a Fyne button
type ButtonControl struct {
	button *widget.Button
}

// NewButtonControl wraps a button
func NewButtonControl(button *widget.Button) *ButtonControl {
	return &ButtonControl{button: button}
}

// SetState applies the state on the Fyne main thread
func (c *ButtonControl) SetState(state controller.ControlState) {
	fyne.Do(func() {
		c.apply(state)
	})
}

func (c *ButtonControl) apply(state controller.ControlState) {
	if c.button.Text != state.Label {
		c.button.SetText(state.Label)
	}
	if state.Enabled {
		c.button.Enable()
	} else {
		c.button.Disable()
	}
	if state.Hidden {
		c.button.Hide()
	} else {
		c.button.Show()
	}
}

// ToastNotifier shows notices in a panel under the input row and as a
// short-lived popup in the top-right corner of the window.
type ToastNotifier struct {
	window    fyne.Window
	label     *widget.Label
	container *fyne.Container
	autoHide  time.Duration

	mu    sync.Mutex
	seq   int
	popup *widget.PopUp
}

// NewToastNotifier creates a notifier for window
func NewToastNotifier(window fyne.Window) *ToastNotifier {
	n := &ToastNotifier{
		window:   window,
		label:    widget.NewLabel(""),
		autoHide: ToastAutoHide,
	}
	n.label.Wrapping = fyne.TextWrapWord
	n.container = container.NewPadded(n.label)
	n.container.Hide()
	return n
}

// Container returns the notification panel
func (n *ToastNotifier) Container() fyne.CanvasObject {
	return n.container
}

// Notify shows a notice and hides it after the auto-hide delay unless a
// newer notice replaced it
func (n *ToastNotifier) Notify(kind controller.NoticeKind, message string) {
	n.mu.Lock()
	n.seq++
	seq := n.seq
	n.mu.Unlock()

	fyne.Do(func() {
		n.show(kind, message)
	})

	go func() {
		time.Sleep(n.autoHide)
		n.mu.Lock()
		current := n.seq == seq
		n.mu.Unlock()
		if current {
			fyne.Do(n.hide)
		}
	}()
}

// Message returns the text currently shown in the panel
func (n *ToastNotifier) Message() string {
	return n.label.Text
}

func (n *ToastNotifier) show(kind controller.NoticeKind, message string) {
	text := noticeIcon(kind) + " " + message
	n.label.Importance = noticeImportance(kind)
	n.label.SetText(text)
	n.container.Show()

	if n.window == nil {
		return
	}
	if n.popup != nil {
		n.popup.Hide()
	}

	toastLabel := widget.NewLabel(text)
	toastLabel.Importance = n.label.Importance
	toastLabel.Truncation = fyne.TextTruncateEllipsis
	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		popup.Hide()
	})
	closeBtn.Importance = widget.LowImportance

	popup = widget.NewPopUp(container.NewBorder(nil, nil, nil, closeBtn, toastLabel), n.window.Canvas())
	canvasSize := n.window.Canvas().Size()
	popup.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	popup.ShowAtPosition(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	n.popup = popup
}

func (n *ToastNotifier) hide() {
	n.container.Hide()
	if n.popup != nil {
		n.popup.Hide()
		n.popup = nil
	}
}

func noticeIcon(kind controller.NoticeKind) string {
	switch kind {
	case controller.NoticeSuccess:
		return IconSuccess
	case controller.NoticeWarning:
		return IconWarning
	case controller.NoticeError:
		return IconError
	default:
		return IconInfo
	}
}

func noticeImportance(kind controller.NoticeKind) widget.Importance {
	switch kind {
	case controller.NoticeSuccess:
		return widget.SuccessImportance
	case controller.NoticeWarning:
		return widget.WarningImportance
	case controller.NoticeError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
