package fetcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/optview/internal/logger"
)

// FileFetcher reads reports from the local filesystem.
type FileFetcher struct {
	config Config
}

// NewFile creates a file fetcher.
func NewFile(cfg Config) *FileFetcher {
	return &FileFetcher{config: cfg}
}

// Fetch reads the whole file at path.
func (f *FileFetcher) Fetch(ctx context.Context, path string) (Content, error) {
	if err := ctx.Err(); err != nil {
		return Content{}, err
	}

	if f.config.MaxSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return Content{}, fmt.Errorf("failed to read input file: %w", err)
		}
		if info.Size() > f.config.MaxSize {
			return Content{}, fmt.Errorf("%w: %s is %s, limit %s", ErrTooLarge, path,
				humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(f.config.MaxSize)))
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read input file: %w", err)
	}
	logger.Debug("input file read", "path", path, "size", humanize.Bytes(uint64(len(data))))

	return Content{
		Source:    path,
		HTML:      string(data),
		FetchedAt: time.Now(),
	}, nil
}

// Close releases resources.
func (f *FileFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *FileFetcher) Type() string {
	return "file"
}
