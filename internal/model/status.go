package model

// PlaybackState represents the state of the voice playback control
type PlaybackState string

const (
	// PlaybackIdle means the play control is enabled and shows its original label
	PlaybackIdle PlaybackState = "Idle"

	// PlaybackRequesting means a voice generation request is in flight
	PlaybackRequesting PlaybackState = "Requesting"

	// PlaybackPlaying means the generated audio is being played
	PlaybackPlaying PlaybackState = "Playing"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsBusy returns true while a voice cycle is in progress
func (ps PlaybackState) IsBusy() bool {
	return ps == PlaybackRequesting || ps == PlaybackPlaying
}

// TerminalEvent is the event that ends a playback
type TerminalEvent int

const (
	// PlaybackEnded means the audio reached its natural end
	PlaybackEnded TerminalEvent = iota

	// PlaybackFailed means the host media facility reported an error
	PlaybackFailed
)

// String returns a readable name for the event
func (te TerminalEvent) String() string {
	switch te {
	case PlaybackEnded:
		return "Ended"
	case PlaybackFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
