// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the input field, line type selector and the convert, copy and play
// buttons to the controllers, and renders results, notifications and settings.
// All UI strings are localized via locale.Localization.
package ui
