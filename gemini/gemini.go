// Package gemini implements the analysis models on top of Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/newslens"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// generate sends a single-turn prompt and returns the response text.
func generate(ctx context.Context, client *genai.Client, model, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if client == nil {
		return "", newslens.Errorf(newslens.EINTERNAL, "gemini client not configured")
	}

	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", newslens.Errorf(newslens.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}
