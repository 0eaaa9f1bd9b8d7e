package mock

import (
	"context"

	"github.com/fwojciec/newslens"
)

var _ newslens.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of newslens.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, opts newslens.SummaryOptions) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, opts newslens.SummaryOptions) (string, error) {
	return s.SummarizeFn(ctx, text, opts)
}
