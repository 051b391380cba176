package model

// AffordanceState describes which controls are enabled or hidden.
// It is derived from the session inputs and never stored.
type AffordanceState struct {
	ConvertEnabled bool
	CopyHidden     bool
	PlayHidden     bool
	PlayEnabled    bool
	PlayBusy       bool
}

// Affordances derives the control state from the current inputs.
// hasResult is true once any conversion has succeeded in this session.
func Affordances(hasInput, hasResult, isGeneratingVoice bool) AffordanceState {
	return AffordanceState{
		ConvertEnabled: hasInput,
		CopyHidden:     !hasResult,
		PlayHidden:     !hasResult,
		PlayEnabled:    hasResult && !isGeneratingVoice,
		PlayBusy:       isGeneratingVoice,
	}
}
