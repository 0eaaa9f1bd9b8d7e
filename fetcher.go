package newslens

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations present themselves as an ordinary desktop browser to reduce
// rejection by anti-automation defenses.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// Network failures, non-2xx statuses and timeouts are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
