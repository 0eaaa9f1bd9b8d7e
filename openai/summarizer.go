package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/newslens"
	openai "github.com/sashabaranov/go-openai"
)

var _ newslens.Summarizer = (*Summarizer)(nil)

// Summarizer implements newslens.Summarizer using chat completions.
type Summarizer struct {
	client ChatClient
	model  string
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client ChatClient, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize produces a summary bounded by opts. Output is hard-capped at
// opts.MaxTokens completion tokens.
func (s *Summarizer) Summarize(ctx context.Context, text string, opts newslens.SummaryOptions) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newslens.Errorf(newslens.EINVALID, "text required")
	}
	if opts.MinTokens <= 0 || opts.MaxTokens < opts.MinTokens {
		return "", newslens.Errorf(newslens.EINVALID, "invalid summary bounds %d-%d", opts.MinTokens, opts.MaxTokens)
	}

	summary, err := complete(ctx, s.client, BuildSummarizeRequest(s.model, text, opts))
	if err != nil {
		return "", err
	}
	if summary == "" {
		return "", newslens.Errorf(newslens.EINTERNAL, "openai returned empty summary")
	}
	return summary, nil
}

// BuildSummarizeRequest returns a deterministic summarization request.
func BuildSummarizeRequest(model, text string, opts newslens.SummaryOptions) openai.ChatCompletionRequest {
	seed := 0
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You summarize news articles. Write plain prose with no headings, lists or preamble. Use only information in the article."},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Summarize the article below in %d to %d words.\n\n<article>\n%s\n</article>", opts.MinTokens, opts.MaxTokens, text)},
		},
		MaxTokens:   opts.MaxTokens,
		Temperature: zeroTemperature,
		Seed:        &seed,
	}
}
