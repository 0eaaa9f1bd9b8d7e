package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/newslens"
	"github.com/rs/zerolog"
)

// Ensure LoggingModelProvider implements newslens.ModelProvider.
var _ newslens.ModelProvider = (*LoggingModelProvider)(nil)

// LoggingModelProvider wraps a ModelProvider with logging. Loaded models are
// wrapped in LoggingAnalyzer and LoggingSummarizer.
type LoggingModelProvider struct {
	next   newslens.ModelProvider
	logger zerolog.Logger
}

// NewLoggingModelProvider creates a new LoggingModelProvider.
func NewLoggingModelProvider(next newslens.ModelProvider, logger zerolog.Logger) *LoggingModelProvider {
	return &LoggingModelProvider{next: next, logger: logger}
}

// LoadModels delegates to the wrapped provider and decorates the result.
func (p *LoggingModelProvider) LoadModels(ctx context.Context) (models *newslens.Models, err error) {
	defer func(begin time.Time) {
		event(p.logger, err).
			Str("backend", p.next.Name()).
			Dur("duration", time.Since(begin)).
			Msg("load models")
	}(time.Now())

	models, err = p.next.LoadModels(ctx)
	if err != nil || models == nil {
		return models, err
	}

	logger := p.logger.With().Str("backend", p.next.Name()).Logger()
	decorated := &newslens.Models{}
	if models.Analyzer != nil {
		decorated.Analyzer = NewLoggingAnalyzer(models.Analyzer, logger)
	}
	if models.Summarizer != nil {
		decorated.Summarizer = NewLoggingSummarizer(models.Summarizer, logger)
	}
	return decorated, nil
}

// Name delegates to the wrapped provider.
func (p *LoggingModelProvider) Name() string {
	return p.next.Name()
}
