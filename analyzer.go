package newslens

import "context"

// Sentiment labels returned by analyzers.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// Sentiment is a classification of a text window.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analyzer classifies the sentiment of text.
type Analyzer interface {
	// Classify returns the sentiment label and the model's score for it.
	// Callers are responsible for bounding the input length.
	Classify(ctx context.Context, text string) (*Sentiment, error)
}
