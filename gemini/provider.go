package gemini

import (
	"context"

	"github.com/fwojciec/newslens"
	"google.golang.org/genai"
)

// Ensure Provider implements newslens.ModelProvider at compile time.
var _ newslens.ModelProvider = (*Provider)(nil)

// Provider loads the Gemini-backed analyzer and summarizer.
type Provider struct {
	apiKey  string
	model   string
	baseURL string
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the Gemini API endpoint.
func WithBaseURL(url string) Option {
	return func(p *Provider) {
		p.baseURL = url
	}
}

// NewProvider creates a new Provider. An empty model selects DefaultModel.
func NewProvider(apiKey, model string, opts ...Option) *Provider {
	if model == "" {
		model = DefaultModel
	}
	p := &Provider{apiKey: apiKey, model: model}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns "gemini".
func (p *Provider) Name() string {
	return "gemini"
}

// LoadModels creates a client. No request is made until the first
// classification.
func (p *Provider) LoadModels(ctx context.Context) (*newslens.Models, error) {
	if p.apiKey == "" {
		return nil, newslens.Errorf(newslens.EINVALID, "GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      p.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.baseURL},
	})
	if err != nil {
		return nil, newslens.Errorf(newslens.EUNAVAILABLE, "creating gemini client: %v", err)
	}

	return &newslens.Models{
		Analyzer:   NewAnalyzer(client, p.model),
		Summarizer: NewSummarizer(client, p.model),
	}, nil
}
