// Package ai extracts hackathon data and generates ideas and leverages with
// a hosted language model.
package ai

import (
	"context"
	"strings"
)

// Request is one JSON-mode completion.
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Completer sends a single completion and returns the JSON payload the
// model produced. Implementations make exactly one attempt.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// stripFences removes markdown code fences some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
