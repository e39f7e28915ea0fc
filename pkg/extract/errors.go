package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCount is matched by every *ParseError.
	// Check with errors.Is(err, extract.ErrMalformedCount).
	ErrMalformedCount = errors.New("malformed counter value")

	// ErrDroppedItems is returned in strict mode when list items were skipped.
	ErrDroppedItems = errors.New("list items were dropped")
)

// ParseError reports a list item whose count is not an integer.
// Use errors.As to inspect the offending counter.
type ParseError struct {
	Name   string // trimmed counter name
	Text   string // trimmed text that failed to parse
	Offset int    // byte offset of the item payload within the list region
	Err    error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed entry for counter %q: invalid count %q", e.Name, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrMalformedCount as a match.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedCount
}

// Warning describes a list item that was skipped without failing extraction.
type Warning struct {
	Offset  int    `json:"offset"`
	Reason  string `json:"reason"`
	Payload string `json:"payload"`
}

// String returns a human-readable description.
func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s: %q", w.Offset, w.Reason, w.Payload)
}
