package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/newslens"
	"google.golang.org/genai"
)

// Ensure Summarizer implements newslens.Summarizer at compile time.
var _ newslens.Summarizer = (*Summarizer)(nil)

// Summarizer implements newslens.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize produces an abstractive summary bounded by opts.
func (s *Summarizer) Summarize(ctx context.Context, text string, opts newslens.SummaryOptions) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newslens.Errorf(newslens.EINVALID, "text required")
	}
	if opts.MinTokens <= 0 || opts.MaxTokens < opts.MinTokens {
		return "", newslens.Errorf(newslens.EINVALID, "invalid summary bounds %d-%d", opts.MinTokens, opts.MaxTokens)
	}

	raw, err := generate(ctx, s.client, s.model, BuildSummarizePrompt(text, opts), BuildSummarizeConfig(opts))
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(raw)
	if summary == "" {
		return "", newslens.Errorf(newslens.EINTERNAL, "gemini returned empty summary")
	}
	return summary, nil
}

// BuildSummarizeConfig returns the deterministic config used for
// summarization. Output is hard-capped at opts.MaxTokens.
func BuildSummarizeConfig(opts newslens.SummaryOptions) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize news articles. Write plain prose with no headings, lists or preamble. Use only information in the article.",
			}},
		},
		Temperature:     genai.Ptr[float32](0),
		Seed:            genai.Ptr[int32](0),
		MaxOutputTokens: int32(opts.MaxTokens),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}
}

// BuildSummarizePrompt builds the user prompt for summarization.
func BuildSummarizePrompt(text string, opts newslens.SummaryOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the article below in %d to %d words.\n\n", opts.MinTokens, opts.MaxTokens)
	sb.WriteString("<article>\n")
	sb.WriteString(text)
	sb.WriteString("\n</article>")
	return sb.String()
}
