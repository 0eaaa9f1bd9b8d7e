// Package rod provides a headless-Chrome implementation of newslens.Fetcher
// for pages that only render their article body with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/newslens"
	nlhttp "github.com/fwojciec/newslens/http"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation and load of a single page.
const DefaultFetchTimeout = newslens.DefaultFetchTimeout

// Ensure Fetcher implements newslens.Fetcher at compile time.
var _ newslens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// It sends the same browser header profile as http.Fetcher.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	timeout   time.Duration
	userAgent string

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: nlhttp.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-blink-features", "AutomationControlled").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      f.userAgent,
		AcceptLanguage: nlhttp.BrowserHeaders["Accept-Language"],
	}); err != nil {
		return "", fmt.Errorf("setting user agent: %w", err)
	}

	cleanup, err := page.SetExtraHeaders(extraHeaders())
	if err != nil {
		return "", fmt.Errorf("setting headers: %w", err)
	}
	defer cleanup()

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources and kills the launched process.
// Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.closeOnce.Do(func() {
		if f.browser != nil {
			f.closeErr = f.browser.Close()
		}
		if f.launcher != nil {
			f.launcher.Kill()
		}
	})
	return f.closeErr
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

// extraHeaders flattens the browser header profile into the key/value list
// expected by rod. Accept-Language travels with the user agent override.
func extraHeaders() []string {
	var dict []string
	for k, v := range nlhttp.BrowserHeaders {
		if k == "Accept-Language" {
			continue
		}
		dict = append(dict, k, v)
	}
	return dict
}
