package platform

// Package platform contains OS integration: the temp-file store backing
// ephemeral playback handles and the system audio player driven through
// the platform's command-line player.
