package model

import (
	"errors"
	"strings"
)

// ErrEmptyText is the cause of precondition errors raised for empty input
var ErrEmptyText = errors.New("text is empty")

// LineType selects the kana row the service locks consonants to
type LineType string

// DefaultLineType is preselected in the line type selector
const DefaultLineType LineType = "pa"

// lineTypes lists the rows known to the conversion service, in selector order
var lineTypes = []LineType{"a", "ka", "sa", "ta", "na", "ha", "ma", "ya", "ra", "ga", "za", "da", "ba", "pa"}

// LineTypes returns the selector values offered to the user
func LineTypes() []LineType {
	out := make([]LineType, len(lineTypes))
	copy(out, lineTypes)
	return out
}

// LineTypeOptions returns the selector values as plain strings
func LineTypeOptions() []string {
	out := make([]string, 0, len(lineTypes))
	for _, lt := range lineTypes {
		out = append(out, string(lt))
	}
	return out
}

// IsKnown reports whether the value is one of the rows offered in the selector.
// Unknown values are still sent as-is; the server decides what to do with them.
func (lt LineType) IsKnown() bool {
	for _, known := range lineTypes {
		if lt == known {
			return true
		}
	}
	return false
}

// ConversionRequest is created on each convert activation
type ConversionRequest struct {
	InputText string
	LineType  LineType
}

// ErrorState is shown in place of a result when a conversion fails
type ErrorState struct {
	Message string
}

// ConversionResult holds either the converted text or an error state, never both
type ConversionResult struct {
	Text string
	Err  *ErrorState
}

// NewTextResult returns a successful result
func NewTextResult(text string) ConversionResult {
	return ConversionResult{Text: text}
}

// NewErrorResult returns a failed result carrying a user-facing message
func NewErrorResult(message string) ConversionResult {
	return ConversionResult{Err: &ErrorState{Message: message}}
}

// IsError returns true if the result is an error state
func (cr ConversionResult) IsError() bool {
	return cr.Err != nil
}

// Display returns the text to render in the result region
func (cr ConversionResult) Display() string {
	if cr.Err != nil {
		return cr.Err.Message
	}
	return cr.Text
}

// VoiceRequest carries the text to synthesize
type VoiceRequest struct {
	Text string `json:"text"`
}

// Validate checks the request before it leaves the client
func (vr VoiceRequest) Validate() error {
	if strings.TrimSpace(vr.Text) == "" {
		return NewError(KindPrecondition, "generateVoice", "", ErrEmptyText)
	}
	return nil
}

// AudioAsset is the binary payload returned by the voice endpoint
type AudioAsset struct {
	Data        []byte
	ContentType string
}

// Size returns the payload size in bytes
func (a *AudioAsset) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}
