package newslens

import "context"

// SummaryOptions bounds the length of a generated summary, in tokens.
type SummaryOptions struct {
	MinTokens int
	MaxTokens int
}

// Summarizer produces a short summary of text.
// Generation must be deterministic: identical input yields identical output.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error)
}
