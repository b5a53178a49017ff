package fluentvalidation

import (
	"encoding/json"
	"fmt"
)

// ValidationFailure is the record produced for a single failed validation.
// It is fully populated by the time it is returned and never mutated
// afterwards; the core keeps no reference to it.
//
// Fields:
// - PropertyName: the property the failing rule was attached to.
// - ErrorMessage: the rendered, human-readable message.
// - AttemptedValue: the raw value under test, unformatted.
// - ErrorCode: the resolved error code for the failing validator.
// - CustomState: opaque caller state from the state provider, if configured.
// - Severity: severity from the severity provider, if configured.
// - FormattedMessagePlaceholderValues: the placeholder map the message was
//   rendered from.
type ValidationFailure struct {
	PropertyName                      string
	ErrorMessage                      string
	AttemptedValue                    any
	ErrorCode                         string
	CustomState                       any
	Severity                          *Severity
	FormattedMessagePlaceholderValues map[string]any

	// FormattedMessageArguments is a positional projection of the
	// placeholder values, in registration order, followed by any
	// arguments appended through the deprecated formatter API.
	//
	// Deprecated: read FormattedMessagePlaceholderValues instead; this
	// field is derived from it at construction time and is not an
	// independent source of truth.
	FormattedMessageArguments []any
}

// Implement the error interface so failures can travel through error-shaped
// plumbing when a caller wants them to.
func (f ValidationFailure) Error() string {
	if f.PropertyName == "" {
		return f.ErrorMessage
	}
	return fmt.Sprintf("%s: %s", f.PropertyName, f.ErrorMessage)
}

// MarshalJSON implements the json.Marshaler interface for ValidationFailure.
// Severity is serialized as its name rather than its numeric value, and the
// legacy positional projection is left out of the wire form entirely.
func (f ValidationFailure) MarshalJSON() ([]byte, error) {
	type failureJSON struct {
		PropertyName      string         `json:"propertyName"`
		ErrorMessage      string         `json:"errorMessage"`
		AttemptedValue    any            `json:"attemptedValue,omitempty"`
		ErrorCode         string         `json:"errorCode,omitempty"`
		CustomState       any            `json:"customState,omitempty"`
		Severity          string         `json:"severity,omitempty"`
		PlaceholderValues map[string]any `json:"placeholderValues,omitempty"`
	}

	out := failureJSON{
		PropertyName:      f.PropertyName,
		ErrorMessage:      f.ErrorMessage,
		AttemptedValue:    f.AttemptedValue,
		ErrorCode:         f.ErrorCode,
		CustomState:       f.CustomState,
		PlaceholderValues: f.FormattedMessagePlaceholderValues,
	}
	if f.Severity != nil {
		out.Severity = f.Severity.String()
	}
	return json.Marshal(out)
}
