// Package controller orchestrates the conversion and voice playback flows.
//
// ConversionController publishes results into a ResultStore; the
// VoicePlaybackController reads them back through the store's accessor.
// Both render their controls through a ControlPanel and report to the
// user through a Notifier, so the same controllers drive the desktop UI
// and the terminal front end.
package controller
