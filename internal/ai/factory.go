package ai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"whattohack-api/internal/ai/mock"
	"whattohack-api/internal/config"
	"whattohack-api/internal/research"
	"whattohack-api/internal/scrape"
)

// New builds the Generator selected by cfg.AIMode. The returned cleanup
// releases backend resources and is never nil.
func New(ctx context.Context, cfg *config.Config) (Generator, func(), error) {
	noop := func() {}

	switch cfg.AIMode {
	case config.ModeMock:
		slog.Info("AI running in mock mode", "delay", cfg.MockDelay)
		return mock.New(cfg.MockDelay), noop, nil

	case config.ModeOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, noop, fmt.Errorf("OPENAI_API_KEY is empty")
		}
		c := NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, nil)
		return NewLLMGenerator(c, contextSources(cfg)...), noop, nil

	case config.ModeGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, noop, fmt.Errorf("GEMINI_API_KEY is empty")
		}
		c, err := NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := c.Close(); err != nil {
				slog.Warn("Failed to close Gemini client", "error", err)
			}
		}
		return NewLLMGenerator(c, contextSources(cfg)...), cleanup, nil

	default:
		return nil, noop, fmt.Errorf("unknown AI mode: %s", cfg.AIMode)
	}
}

func contextSources(cfg *config.Config) []ContextSource {
	sources := []ContextSource{scrape.NewPublicPageReader()}
	if cfg.TavilyAPIKey != "" {
		sources = append(sources, research.NewTavily(cfg.TavilyAPIKey, http.DefaultClient))
	}
	return sources
}
