// Package llm calls the OpenRouter completion API to rewrite raw task text
// into a clearer markdown task line.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	completionModel   = "google/gemini-2.0-flash-001"
	maxTokens         = 100
)

const promptTemplate = `Human: You are a helpful assistant. Take the following raw task and improve it for a markdown task list.
Make it clearer and more actionable. Add a single '- [ ] 📋' prefix. Raw task: %q

Assistant:`

// Source records where an improved task line came from.
type Source int

const (
	// SourceModel means the text is the model's first completion choice.
	SourceModel Source = iota
	// SourceAPIError means the API answered with a non-success status and
	// the text is the local checkbox fallback.
	SourceAPIError
	// SourceEmptyChoices means the API answered with no choices and the
	// raw text was reused unchanged.
	SourceEmptyChoices
)

// Result carries the text to write and, when a fallback was used, the
// reason for it.
type Result struct {
	Text   string
	Source Source
}

// Client talks to the completion endpoint.
type Client struct {
	api *openai.Client
	log *zap.Logger
}

// New creates a Client authenticated with apiKey against OpenRouter.
func New(apiKey string, log *zap.Logger) *Client {
	return NewWithBaseURL(apiKey, openRouterBaseURL, log)
}

// NewWithBaseURL creates a Client against an alternate endpoint. Tests use
// this to point at a local server.
func NewWithBaseURL(apiKey, baseURL string, log *zap.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api: openai.NewClientWithConfig(cfg),
		log: log,
	}
}

// Improve sends raw to the completion API and returns the rewritten task
// line. API-level failures are absorbed into a fallback Result so that
// task creation never blocks on the remote service; only transport-level
// failures surface as an error.
func (c *Client) Improve(ctx context.Context, raw string) (Result, error) {
	resp, err := c.api.CreateCompletion(ctx, openai.CompletionRequest{
		Model:     completionModel,
		Prompt:    fmt.Sprintf(promptTemplate, raw),
		MaxTokens: maxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			c.log.Warn("completion API returned an error, using local fallback",
				zap.Int("status", apiErr.HTTPStatusCode),
				zap.String("message", apiErr.Message))
			return Result{Text: "- [ ] " + raw, Source: SourceAPIError}, nil
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			c.log.Warn("completion API returned an error, using local fallback",
				zap.Int("status", reqErr.HTTPStatusCode),
				zap.Error(reqErr.Err))
			return Result{Text: "- [ ] " + raw, Source: SourceAPIError}, nil
		}
		return Result{}, fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Result{Text: raw, Source: SourceEmptyChoices}, nil
	}

	return Result{
		Text:   strings.TrimSpace(resp.Choices[0].Text),
		Source: SourceModel,
	}, nil
}
