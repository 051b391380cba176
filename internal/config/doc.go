package config

// Package config holds the application configuration: Fyne preferences-backed
// settings for the desktop app and an environment-driven loader for the CLI.
// Both produce the same Options snapshot.
