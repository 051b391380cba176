package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconWarning  = "⚠"
	IconSuccess  = "✓"
	IconInfo     = "ℹ"
	IconLanguage = "🌐"
)

// Layout sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 360

	LineTypeSelectWidth float32 = 96
	ResultMinHeight     float32 = 96
	LogoSize            float32 = 32
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 56
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Settings dialog
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
	TimeoutEntryUnit             = time.Second
)
