// Package openai implements the analysis models on top of any
// OpenAI-compatible chat completions endpoint.
package openai

import (
	"context"
	"math"
	"strings"

	"github.com/fwojciec/newslens"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// ChatClient is the subset of *openai.Client used by this package.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// zeroTemperature stands in for 0, which omitempty drops from the request.
const zeroTemperature = math.SmallestNonzeroFloat32

func complete(ctx context.Context, client ChatClient, req openai.ChatCompletionRequest) (string, error) {
	if client == nil {
		return "", newslens.Errorf(newslens.EINTERNAL, "openai client not configured")
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", newslens.Errorf(newslens.EINTERNAL, "openai returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
