package lexicon

import (
	"context"

	"github.com/fwojciec/newslens"
)

// Ensure Provider implements newslens.ModelProvider at compile time.
var _ newslens.ModelProvider = (*Provider)(nil)

// Provider supplies the lexicon Analyzer and Summarizer. Loading never fails.
type Provider struct{}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// LoadModels returns the lexicon models.
func (p *Provider) LoadModels(context.Context) (*newslens.Models, error) {
	return &newslens.Models{
		Analyzer:   NewAnalyzer(),
		Summarizer: NewSummarizer(),
	}, nil
}

// Name returns "lexicon".
func (p *Provider) Name() string {
	return "lexicon"
}
