package openai

import (
	"context"

	"github.com/fwojciec/newslens"
	openai "github.com/sashabaranov/go-openai"
)

var _ newslens.ModelProvider = (*Provider)(nil)

// Provider loads chat-completion backed models. A base URL selects any
// OpenAI-compatible server, for which the API key may be empty.
type Provider struct {
	apiKey  string
	baseURL string
	model   string
}

// NewProvider creates a new Provider. An empty model selects DefaultModel.
func NewProvider(apiKey, baseURL, model string) *Provider {
	if model == "" {
		model = DefaultModel
	}
	return &Provider{apiKey: apiKey, baseURL: baseURL, model: model}
}

// Name returns "openai".
func (p *Provider) Name() string {
	return "openai"
}

// LoadModels builds the client. It does not contact the server.
func (p *Provider) LoadModels(ctx context.Context) (*newslens.Models, error) {
	if p.apiKey == "" && p.baseURL == "" {
		return nil, newslens.Errorf(newslens.EINVALID, "OPENAI_API_KEY not set")
	}

	cfg := openai.DefaultConfig(p.apiKey)
	if p.baseURL != "" {
		cfg.BaseURL = p.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	return &newslens.Models{
		Analyzer:   NewAnalyzer(client, p.model),
		Summarizer: NewSummarizer(client, p.model),
	}, nil
}
