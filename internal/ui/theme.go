package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PlayerTheme keeps the default look with larger text for kana and
// distinct success, warning and error colors for notifications.
type PlayerTheme struct{}

// NewPlayerTheme creates the application theme
func NewPlayerTheme() fyne.Theme {
	return &PlayerTheme{}
}

// Color returns theme colors
func (t *PlayerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 198, G: 40, B: 40, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 239, G: 160, B: 0, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 123, G: 31, B: 162, A: 255} // Purple for primary actions
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PlayerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PlayerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *PlayerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameInputRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
