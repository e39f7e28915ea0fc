package optview

import (
	"time"

	"github.com/jmylchreest/optview/pkg/fetcher"
	"github.com/jmylchreest/optview/pkg/render"
)

// Config holds all Converter configuration.
type Config struct {
	Template render.Template

	// Fetcher overrides source-based fetcher selection in ConvertSource.
	Fetcher fetcher.Fetcher
	Fetch   fetcher.Config

	// Strict fails conversion when list items were dropped.
	Strict bool
}

// DefaultConfig returns the compiled-in template and no input limits.
func DefaultConfig() Config {
	return Config{
		Template: render.Default(),
		Fetch: fetcher.Config{
			Timeout: 30 * time.Second,
		},
	}
}

// Option configures a Converter.
type Option func(*Config)

// WithTemplate replaces the page fragments.
func WithTemplate(t render.Template) Option {
	return func(c *Config) {
		c.Template = t
	}
}

// WithFetcher injects a custom fetcher.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = f
	}
}

// WithMaxInputSize limits report size in bytes; 0 disables the limit.
func WithMaxInputSize(n int64) Option {
	return func(c *Config) {
		c.Fetch.MaxSize = n
	}
}

// WithTimeout sets the timeout for reports fetched over HTTP.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Fetch.Timeout = d
	}
}

// WithStrict makes dropped list items an error.
func WithStrict(strict bool) Option {
	return func(c *Config) {
		c.Strict = strict
	}
}
