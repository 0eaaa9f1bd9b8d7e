package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/newslens"
	"github.com/rs/zerolog"
)

// Ensure LoggingFetcher implements newslens.Fetcher.
var _ newslens.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   newslens.Fetcher
	logger zerolog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next newslens.Fetcher, logger zerolog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		event(f.logger, err).
			Str("url", url).
			Int("bytes", len(html)).
			Dur("duration", time.Since(begin)).
			Msg("fetch")
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
