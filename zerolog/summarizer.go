package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/newslens"
	"github.com/rs/zerolog"
)

// Ensure LoggingSummarizer implements newslens.Summarizer.
var _ newslens.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   newslens.Summarizer
	logger zerolog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next newslens.Summarizer, logger zerolog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the summary length.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string, opts newslens.SummaryOptions) (summary string, err error) {
	defer func(begin time.Time) {
		event(s.logger, err).
			Int("chars", len([]rune(text))).
			Int("min_tokens", opts.MinTokens).
			Int("max_tokens", opts.MaxTokens).
			Int("summary_chars", len([]rune(summary))).
			Dur("duration", time.Since(begin)).
			Msg("summarize")
	}(time.Now())
	return s.next.Summarize(ctx, text, opts)
}
