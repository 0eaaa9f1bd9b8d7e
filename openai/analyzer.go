package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/newslens"
	openai "github.com/sashabaranov/go-openai"
)

var _ newslens.Analyzer = (*Analyzer)(nil)

// Analyzer implements newslens.Analyzer using chat completions in JSON mode.
type Analyzer struct {
	client ChatClient
	model  string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client ChatClient, model string) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	return &Analyzer{client: client, model: model}
}

// Classify returns the model's sentiment label and confidence.
func (a *Analyzer) Classify(ctx context.Context, text string) (*newslens.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newslens.Errorf(newslens.EINVALID, "text required")
	}

	raw, err := complete(ctx, a.client, BuildClassifyRequest(a.model, text))
	if err != nil {
		return nil, err
	}

	return newslens.ParseSentiment(raw)
}

// BuildClassifyRequest returns a deterministic JSON-mode request.
func BuildClassifyRequest(model, text string) openai.ChatCompletionRequest {
	seed := 0
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifySystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: "<article>\n" + text + "\n</article>"},
		},
		Temperature: zeroTemperature,
		Seed:        &seed,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
}

const classifySystemMessage = `You are a sentiment classifier for news articles. Respond with strict JSON only: {"label":"POSITIVE|NEGATIVE|NEUTRAL","score":number}. score is your confidence in the label, between 0 and 1.`
