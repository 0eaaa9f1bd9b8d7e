package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/newslens"
	"github.com/rs/zerolog"
)

// Ensure LoggingAnalyzer implements newslens.Analyzer.
var _ newslens.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   newslens.Analyzer
	logger zerolog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next newslens.Analyzer, logger zerolog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Classify delegates to the wrapped analyzer and logs the classification.
func (a *LoggingAnalyzer) Classify(ctx context.Context, text string) (s *newslens.Sentiment, err error) {
	defer func(begin time.Time) {
		ev := event(a.logger, err).Int("chars", len([]rune(text)))
		if s != nil {
			ev = ev.Str("label", s.Label).Float64("score", s.Score)
		}
		ev.Dur("duration", time.Since(begin)).Msg("classify")
	}(time.Now())
	return a.next.Classify(ctx, text)
}
