// Package fetcher loads report text from a local file or a web address.
// Implement the Fetcher interface to read reports from other places.
package fetcher

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Fetcher abstracts where a report comes from.
type Fetcher interface {
	// Fetch retrieves the report text for a source (path or URL).
	Fetch(ctx context.Context, source string) (Content, error)

	// Close releases any resources.
	Close() error

	// Type returns a string identifying the fetcher type (e.g., "file", "static").
	Type() string
}

// Content is the loaded report.
type Content struct {
	Source     string
	HTML       string
	Title      string // <title> of reports fetched over HTTP
	StatusCode int    // zero for local files
	FetchedAt  time.Time
}

// Config is shared by the built-in fetchers.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	MaxSize   int64 // bytes; 0 means unlimited
}

// ErrTooLarge is returned when a report exceeds Config.MaxSize.
// Check with errors.Is(err, fetcher.ErrTooLarge).
var ErrTooLarge = errors.New("input exceeds maximum size")

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ForSource returns the fetcher that handles source.
func ForSource(source string, cfg Config) Fetcher {
	if IsURL(source) {
		return NewStatic(cfg)
	}
	return NewFile(cfg)
}
