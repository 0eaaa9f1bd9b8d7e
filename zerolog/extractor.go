package zerolog

import (
	"github.com/fwojciec/newslens"
	"github.com/rs/zerolog"
)

// Ensure LoggingExtractor implements newslens.Extractor.
var _ newslens.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and reports the HTML size and the
// number of elements each heuristic matched.
type LoggingExtractor struct {
	next   newslens.Extractor
	logger zerolog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newslens.Extractor, logger zerolog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the match counts.
func (e *LoggingExtractor) Extract(html string) (result *newslens.ExtractResult, err error) {
	defer func() {
		ev := event(e.logger, err).Int("html_size", len(html))
		if result != nil {
			ev = ev.
				Int("paragraphs", result.Paragraphs).
				Int("articles", result.Articles).
				Int("content_blocks", result.ContentBlocks).
				Str("strategy", string(result.Strategy)).
				Int("chars", len([]rune(result.Text)))
		}
		ev.Msg("extract")
	}()
	return e.next.Extract(html)
}
