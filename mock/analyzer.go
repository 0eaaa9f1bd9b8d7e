package mock

import (
	"context"

	"github.com/fwojciec/newslens"
)

var _ newslens.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of newslens.Analyzer.
type Analyzer struct {
	ClassifyFn func(ctx context.Context, text string) (*newslens.Sentiment, error)
}

func (a *Analyzer) Classify(ctx context.Context, text string) (*newslens.Sentiment, error) {
	return a.ClassifyFn(ctx, text)
}
