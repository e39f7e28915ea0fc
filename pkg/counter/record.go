// Package counter defines the named integer counters read from an
// optimization report.
package counter

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Record is one named counter plus the derived "largest" flag.
type Record struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Count int    `json:"count" yaml:"count"`

	// Largest is set only by the selector, never by the extractor.
	Largest bool `json:"largest" yaml:"largest"`
}

// Records is an ordered batch of counters, in source order.
type Records []Record

var validate = validator.New()

// Validate checks a single record.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid counter record: %w", err)
	}
	return nil
}

// Validate checks every record and the at-most-one-largest invariant.
func (rs Records) Validate() error {
	marked := 0
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if r.Largest {
			marked++
		}
	}
	if marked > 1 {
		return fmt.Errorf("%d records marked largest, expected at most one", marked)
	}
	return nil
}

// Largest returns the marked record, if any.
func (rs Records) Largest() (Record, bool) {
	for _, r := range rs {
		if r.Largest {
			return r, true
		}
	}
	return Record{}, false
}

// Total returns the sum of all counts.
func (rs Records) Total() int {
	total := 0
	for _, r := range rs {
		total += r.Count
	}
	return total
}

// String returns a compact human-readable listing.
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s=%d", r.Name, r.Count))
	if r.Largest {
		sb.WriteString(" (largest)")
	}
	return sb.String()
}
