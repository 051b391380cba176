package model

// Package model defines the transient data structures shared by the controllers:
// conversion and voice requests, the displayed conversion result, audio assets,
// playback states, the derived UI affordance state, and the error taxonomy.
