// Package cli implements the colock command line front end.
//
// The commands drive the same controllers as the desktop UI; notifications
// and control states are rendered to the terminal with lipgloss styles.
package cli
