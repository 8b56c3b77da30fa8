// Package parsererror defines the typed errors of the ingestion pipeline.
package parsererror

import "fmt"

// UnrecognizedFormatError is returned when no bank dialect claims the upload.
// It is fatal for the whole upload and surfaced to the caller as a client error.
type UnrecognizedFormatError struct {
	Snippet string // first bytes of the content for debugging
}

func (e *UnrecognizedFormatError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("bank format could not be identified (content starts with %q)", e.Snippet)
	}
	return "bank format could not be identified"
}

// UndecodableInputError is returned when none of the fallback text encodings
// can decode the uploaded bytes.
type UndecodableInputError struct {
	Tried []string
}

func (e *UndecodableInputError) Error() string {
	return fmt.Sprintf("could not decode upload with any of the supported encodings %v", e.Tried)
}

// ParseError represents a per-row or per-field conversion failure. Rows that
// produce one are skipped individually, never fatal for the upload.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NoSessionDataError is returned when a report is requested for a session key
// with no prior upload.
type NoSessionDataError struct {
	SessionID string
}

func (e *NoSessionDataError) Error() string {
	return fmt.Sprintf("no transactions stored for session '%s'", e.SessionID)
}

// ZeroIncomeError marks a budget aggregation that cannot compute percentages
// because the upload contains no positive amounts. It degrades to an error
// field in the response rather than failing the request.
type ZeroIncomeError struct{}

func (e *ZeroIncomeError) Error() string {
	return "no income found, cannot compute budget percentages"
}
