package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/newslens"
	"google.golang.org/genai"
)

// Ensure Analyzer implements newslens.Analyzer at compile time.
var _ newslens.Analyzer = (*Analyzer)(nil)

// Analyzer implements newslens.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client, model string) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	return &Analyzer{client: client, model: model}
}

// Classify asks the model for a POSITIVE, NEGATIVE or NEUTRAL label and a
// confidence score for it.
func (a *Analyzer) Classify(ctx context.Context, text string) (*newslens.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newslens.Errorf(newslens.EINVALID, "text required")
	}

	raw, err := generate(ctx, a.client, a.model, BuildClassifyPrompt(text), BuildClassifyConfig())
	if err != nil {
		return nil, err
	}

	return newslens.ParseSentiment(raw)
}

// BuildClassifyConfig returns the deterministic, schema-constrained config
// used for sentiment classification.
func BuildClassifyConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a sentiment classifier for news articles. Classify the overall sentiment of the text and report how confident you are in that label as a number between 0 and 1.",
			}},
		},
		Temperature:      genai.Ptr[float32](0),
		Seed:             genai.Ptr[int32](0),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"label": {
					Type: genai.TypeString,
					Enum: []string{newslens.LabelPositive, newslens.LabelNegative, newslens.LabelNeutral},
				},
				"score": {
					Type:    genai.TypeNumber,
					Minimum: genai.Ptr[float64](0),
					Maximum: genai.Ptr[float64](1),
				},
			},
			Required: []string{"label", "score"},
		},
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}
}

// BuildClassifyPrompt wraps text for classification.
func BuildClassifyPrompt(text string) string {
	return fmt.Sprintf("<article>\n%s\n</article>", text)
}
