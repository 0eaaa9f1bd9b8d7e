package newslens

import "context"

// Models holds the analysis capabilities used by a single run.
type Models struct {
	Analyzer   Analyzer
	Summarizer Summarizer
}

// ModelProvider constructs analysis capabilities on demand.
// Construction may be expensive (loading weights, dialing an API) so the
// pipeline only calls LoadModels once it has text worth analyzing.
type ModelProvider interface {
	// LoadModels returns ready-to-use models.
	// Returns EINVALID when required credentials are missing.
	LoadModels(ctx context.Context) (*Models, error)

	// Name returns the backend identifier (e.g., "gemini", "lexicon").
	Name() string
}
