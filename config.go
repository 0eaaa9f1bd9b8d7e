package newslens

import "time"

// Default analysis bounds.
const (
	// AnalysisWindow is the number of characters of extracted text submitted
	// to the models. Longer text is truncated, never rejected.
	AnalysisWindow = 1000

	// SummaryMinTokens and SummaryMaxTokens bound generated summaries.
	SummaryMinTokens = 25
	SummaryMaxTokens = 60

	// ContentBlockLimit caps how many content-class blocks the last-resort
	// extraction heuristic joins.
	ContentBlockLimit = 5

	// DefaultFetchTimeout bounds the page fetch.
	DefaultFetchTimeout = 15 * time.Second
)

// Config holds the tunable bounds of a run.
type Config struct {
	Window            int
	SummaryMinTokens  int
	SummaryMaxTokens  int
	ContentBlockLimit int
	FetchTimeout      time.Duration
}

// DefaultConfig returns the default bounds.
func DefaultConfig() Config {
	return Config{
		Window:            AnalysisWindow,
		SummaryMinTokens:  SummaryMinTokens,
		SummaryMaxTokens:  SummaryMaxTokens,
		ContentBlockLimit: ContentBlockLimit,
		FetchTimeout:      DefaultFetchTimeout,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Window <= 0 {
		return Errorf(EINVALID, "analysis window must be positive")
	}
	if c.SummaryMinTokens <= 0 {
		return Errorf(EINVALID, "summary minimum length must be positive")
	}
	if c.SummaryMaxTokens < c.SummaryMinTokens {
		return Errorf(EINVALID, "summary maximum length must not be below the minimum")
	}
	if c.ContentBlockLimit <= 0 {
		return Errorf(EINVALID, "content block limit must be positive")
	}
	if c.FetchTimeout <= 0 {
		return Errorf(EINVALID, "fetch timeout must be positive")
	}
	return nil
}

// SummaryOptions returns the summary length bounds of the config.
func (c *Config) SummaryOptions() SummaryOptions {
	return SummaryOptions{MinTokens: c.SummaryMinTokens, MaxTokens: c.SummaryMaxTokens}
}
