// Package optview converts an optimization report's counter list into a
// chart page.
//
// Conversion runs three steps on in-memory text: extract the counters,
// mark the largest one and render the page. Only ConvertSource does I/O,
// and only to load the report.
package optview

import (
	"context"
	"fmt"

	"github.com/jmylchreest/optview/internal/logger"
	"github.com/jmylchreest/optview/pkg/counter"
	"github.com/jmylchreest/optview/pkg/extract"
	"github.com/jmylchreest/optview/pkg/fetcher"
	"github.com/jmylchreest/optview/pkg/highlight"
)

// Result is the outcome of one conversion.
type Result struct {
	Source    string
	Title     string // <title> of the loaded report, when it has one
	Records   counter.Records
	Output    string
	Warnings  []extract.Warning
	ListFound bool

	// Largest is the index of the marked record, or -1 when there are none.
	Largest int

	Heading    extract.Heading
	HasHeading bool
}

// HeadingMismatch reports whether the report heading declares a different
// number of counters than were extracted.
func (r Result) HeadingMismatch() bool {
	return r.HasHeading && r.Heading.HasCount && r.Heading.Declared != len(r.Records)
}

// SourceError reports that a report could not be loaded.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Converter runs the extract, highlight and render steps.
type Converter struct {
	config Config
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Converter{config: cfg}
}

// Convert turns report text into the chart page. The same text always
// produces the same output.
func (c *Converter) Convert(text string) (Result, error) {
	extracted, err := extract.Extract(text)
	if err != nil {
		return Result{}, err
	}

	if c.config.Strict && extracted.HasWarnings() {
		return Result{}, fmt.Errorf("%w: %d item(s), first at %s",
			extract.ErrDroppedItems, len(extracted.Warnings), extracted.Warnings[0])
	}
	for _, w := range extracted.Warnings {
		logger.Warn("skipped list item", "offset", w.Offset, "reason", w.Reason, "item", w.Payload)
	}

	records := extracted.Records
	largest, ok := highlight.MarkLargest(records)
	if !ok {
		largest = -1
	}
	if err := records.Validate(); err != nil {
		return Result{}, err
	}

	result := Result{
		Records:   records,
		Output:    c.config.Template.Render(records),
		Warnings:  extracted.Warnings,
		ListFound: extracted.ListFound,
		Largest:   largest,
	}

	result.Heading, result.HasHeading = extract.Summary(text)
	if result.HeadingMismatch() {
		logger.Warn("heading count differs from extracted counters",
			"heading", result.Heading.Text,
			"declared", result.Heading.Declared,
			"extracted", len(records))
	}

	if ok {
		logger.Debug("largest counter selected",
			"name", records[largest].Name,
			"count", records[largest].Count)
	}
	return result, nil
}

// ConvertSource loads a report from a path or URL and converts it.
func (c *Converter) ConvertSource(ctx context.Context, source string) (Result, error) {
	f := c.config.Fetcher
	if f == nil {
		f = fetcher.ForSource(source, c.config.Fetch)
	}
	defer f.Close()

	log := logger.With("source", source, "fetcher", f.Type())
	log.Debug("loading report")
	content, err := f.Fetch(ctx, source)
	if err != nil {
		return Result{}, &SourceError{Source: source, Err: err}
	}
	log.Debug("report loaded", "bytes", len(content.HTML), "title", content.Title)

	result, err := c.Convert(content.HTML)
	if err != nil {
		return Result{}, err
	}
	result.Source = source
	result.Title = content.Title
	return result, nil
}
