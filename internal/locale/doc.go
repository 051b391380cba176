package locale

// Package locale holds the localized user-facing strings shared by the desktop
// UI, the terminal front end, and the controllers' notifications.
