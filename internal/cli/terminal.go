package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/colock-player/internal/controller"
)

// Theme defines the terminal color scheme
type Theme struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Dim     lipgloss.Color
}

// DefaultTheme matches the desktop theme colors
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#7b1fa2"),
	Success: lipgloss.Color("#2ea043"),
	Warning: lipgloss.Color("#efa000"),
	Error:   lipgloss.Color("#c62828"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme
type Styles struct {
	Result  lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Result:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Info:    lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// TerminalNotifier prints notices, one per line
type TerminalNotifier struct {
	mu     sync.Mutex
	w      io.Writer
	styles Styles
}

// NewTerminalNotifier creates a notifier writing to w
func NewTerminalNotifier(w io.Writer, styles Styles) *TerminalNotifier {
	return &TerminalNotifier{w: w, styles: styles}
}

// Notify prints a styled notice
func (n *TerminalNotifier) Notify(kind controller.NoticeKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	style := n.styles.Info
	prefix := "i"
	switch kind {
	case controller.NoticeSuccess:
		style, prefix = n.styles.Success, "✓"
	case controller.NoticeWarning:
		style, prefix = n.styles.Warning, "!"
	case controller.NoticeError:
		style, prefix = n.styles.Error, "✗"
	}
	fmt.Fprintln(n.w, style.Render(prefix+" "+message))
}

// TerminalControl prints a status line when a visible control's label or
// enabled state changes
type TerminalControl struct {
	mu     sync.Mutex
	name   string
	w      io.Writer
	styles Styles
	last   controller.ControlState
	seen   bool
}

// NewTerminalControl creates a control named name writing to w
func NewTerminalControl(name string, w io.Writer, styles Styles) *TerminalControl {
	return &TerminalControl{name: name, w: w, styles: styles}
}

// SetState implements controller.Control
func (c *TerminalControl) SetState(state controller.ControlState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := !c.seen || state != c.last
	c.last = state
	c.seen = true
	if !changed || state.Hidden {
		return
	}

	line := fmt.Sprintf("[%s] %s", c.name, state.Label)
	if !state.Enabled {
		line += " …"
	}
	fmt.Fprintln(c.w, c.styles.Dim.Render(line))
}

// State returns the last applied state
func (c *TerminalControl) State() controller.ControlState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
