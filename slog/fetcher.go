// Package slog provides logging decorators for richtext services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/richtext"
)

// Ensure LoggingFetcher implements richtext.Fetcher.
var _ richtext.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   richtext.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next richtext.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchContent delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchContent(ctx context.Context, url string) (content richtext.Content, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"fields", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchContent(ctx, url)
}
