package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"github.com/gocolly/colly/v2"

	"github.com/jmylchreest/optview/internal/logger"
)

const defaultUserAgent = "optview (+https://github.com/jmylchreest/optview)"

// StaticFetcher uses Colly to download reports published over HTTP.
type StaticFetcher struct {
	config Config
}

// NewStatic creates a new static fetcher.
func NewStatic(cfg Config) *StaticFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &StaticFetcher{config: cfg}
}

// Fetch downloads the report at targetURL.
func (f *StaticFetcher) Fetch(ctx context.Context, targetURL string) (Content, error) {
	logger.Debug("static fetch starting", "url", targetURL)

	if err := ctx.Err(); err != nil {
		return Content{}, err
	}

	result := Content{
		Source:    targetURL,
		FetchedAt: time.Now(),
	}

	opts := []colly.CollectorOption{
		colly.UserAgent(f.config.UserAgent),
		colly.StdlibContext(ctx),
	}
	if f.config.MaxSize > 0 {
		// One byte over the limit lets OnResponse tell a full body from a cut one.
		opts = append(opts, colly.MaxBodySize(int(f.config.MaxSize)+1))
	}
	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(f.config.Timeout)

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		logger.Debug("static fetch response received",
			"status", r.StatusCode,
			"content_type", r.Headers.Get("Content-Type"),
			"body_size", len(r.Body))
		if limit := f.config.MaxSize; limit > 0 && int64(len(r.Body)) > limit {
			fetchErr = fmt.Errorf("%w: %s exceeds limit %s", ErrTooLarge, targetURL,
				humanize.Bytes(uint64(limit)))
			return
		}
		result.HTML = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(targetURL); err != nil {
		return result, fmt.Errorf("failed to visit URL: %w", err)
	}
	if fetchErr != nil {
		return result, fetchErr
	}

	if result.HTML != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
		if err == nil {
			result.Title = strings.TrimSpace(doc.Find("title").First().Text())
		}
	}

	logger.Debug("static fetch complete", "url", targetURL, "title", result.Title)
	return result, nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return "static"
}
