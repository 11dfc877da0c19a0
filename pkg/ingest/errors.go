package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned for a line without two identifier columns.
	ErrMalformedLine = errors.New("malformed edge line")
	// ErrInvalidNodeID is returned when a column is not an unsigned 64-bit integer.
	ErrInvalidNodeID = errors.New("invalid node identifier")
	// ErrSourceUnavailable is returned when an input cannot be opened or read.
	ErrSourceUnavailable = errors.New("edge source unavailable")
)

// ParseError locates a bad line within an input source.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Source, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
