package api

// Package api is the HTTP client for the colock language service: the read-only
// conversion endpoint and the voice generation endpoint. It classifies failures
// into transport, status, and payload errors (see model.Error) and leaves the
// user-facing wording to the controllers.
