package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiCompleter runs completions on Google's Gemini models.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter opens a Gemini client. Close releases it.
func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, model: model}, nil
}

func (c *GeminiCompleter) Name() string { return "gemini" }

func (c *GeminiCompleter) Close() error { return c.client.Close() }

func (c *GeminiCompleter) Complete(ctx context.Context, r Request) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(r.Temperature)
	model.ResponseMIMEType = "application/json"
	if r.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(r.MaxTokens))
	}
	if r.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(r.System)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(r.User))
	if err != nil {
		return "", geminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &Error{Err: fmt.Errorf("%w: empty candidates", ErrMalformed)}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &Error{Err: fmt.Errorf("%w: no text parts", ErrMalformed)}
	}
	return stripFences(sb.String()), nil
}

// geminiError keeps the HTTP status of API errors so auth failures are
// recognized.
func geminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &Error{StatusCode: apiErr.Code, Err: err}
	}
	return &Error{Err: fmt.Errorf("request failed: %w", err)}
}
