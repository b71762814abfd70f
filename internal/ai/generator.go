package ai

import (
	"context"
	"log/slog"

	"whattohack-api/internal/models"
)

// Operation names carried by Error.Op.
const (
	OpExtract   = "extract"
	OpSponsor   = "analyze-sponsor"
	OpIdeas     = "generate-ideas"
	OpLeverages = "generate-leverages"
)

// Generator is the extraction and generation client.
type Generator interface {
	ExtractHackathonData(ctx context.Context, url string) (models.HackathonRecord, error)
	AnalyzeSponsorOpportunities(ctx context.Context, p models.SponsorParams) (models.SponsorAnalysis, error)
	GenerateIdeas(ctx context.Context, p models.IdeasParams) ([]models.ProjectIdea, error)
	GenerateLeverages(ctx context.Context, p models.LeveragesParams) ([]models.Leverage, error)
}

// ContextSource gathers background text about a query before extraction.
// Errors are logged and never fail the extraction.
type ContextSource interface {
	Gather(ctx context.Context, query string) (string, error)
}

// LLMGenerator implements Generator on top of a Completer.
type LLMGenerator struct {
	completer Completer
	sources   []ContextSource
}

// NewLLMGenerator returns a generator that asks completer for every
// operation and feeds the output of sources into extraction prompts.
func NewLLMGenerator(completer Completer, sources ...ContextSource) *LLMGenerator {
	return &LLMGenerator{completer: completer, sources: sources}
}

func (g *LLMGenerator) ExtractHackathonData(ctx context.Context, url string) (models.HackathonRecord, error) {
	slog.Info("Extracting hackathon data", "query", url, "backend", g.completer.Name())

	content, err := g.completer.Complete(ctx, Request{
		System:      extractSystem,
		User:        buildExtractionPrompt(url, g.gather(ctx, url)),
		Temperature: 0.3,
		MaxTokens:   3000,
	})
	if err != nil {
		slog.Error("Failed to extract hackathon data", "query", url, "error", err)
		return models.HackathonRecord{}, withOp(OpExtract, err)
	}

	rec, err := parseExtraction(content, url)
	if err != nil {
		slog.Error("Failed to parse extraction", "query", url, "error", err, "raw_json", content)
		return models.HackathonRecord{}, withOp(OpExtract, err)
	}
	slog.Info("Hackathon data extracted", "name", rec.Name, "sponsors", len(rec.Sponsors))
	return rec, nil
}

func (g *LLMGenerator) AnalyzeSponsorOpportunities(ctx context.Context, p models.SponsorParams) (models.SponsorAnalysis, error) {
	slog.Info("Analyzing sponsor opportunities", "sponsor", p.Sponsor, "hackathon", p.HackathonName)

	content, err := g.completer.Complete(ctx, Request{
		System:      sponsorSystem,
		User:        buildSponsorPrompt(p),
		Temperature: 0.7,
		MaxTokens:   3000,
	})
	if err != nil {
		return models.SponsorAnalysis{}, withOp(OpSponsor, err)
	}

	analysis, err := parseSponsorAnalysis(content, p.Sponsor)
	if err != nil {
		return models.SponsorAnalysis{}, withOp(OpSponsor, err)
	}
	return analysis, nil
}

func (g *LLMGenerator) GenerateIdeas(ctx context.Context, p models.IdeasParams) ([]models.ProjectIdea, error) {
	content, err := g.completer.Complete(ctx, Request{
		System:      ideasSystem,
		User:        buildIdeasPrompt(p),
		Temperature: 0.8,
	})
	if err != nil {
		slog.Error("Failed to generate ideas", "hackathon", p.HackathonName, "error", err)
		return nil, withOp(OpIdeas, err)
	}

	ideas, err := parseIdeas(content)
	if err != nil {
		return nil, withOp(OpIdeas, err)
	}
	return ideas, nil
}

func (g *LLMGenerator) GenerateLeverages(ctx context.Context, p models.LeveragesParams) ([]models.Leverage, error) {
	content, err := g.completer.Complete(ctx, Request{
		System:      leveragesSystem,
		User:        buildLeveragesPrompt(p),
		Temperature: 0.7,
	})
	if err != nil {
		slog.Error("Failed to generate leverages", "hackathon", p.HackathonName, "error", err)
		return nil, withOp(OpLeverages, err)
	}

	leverages, err := parseLeverages(content)
	if err != nil {
		return nil, withOp(OpLeverages, err)
	}
	return leverages, nil
}

func (g *LLMGenerator) gather(ctx context.Context, query string) string {
	var out string
	for _, src := range g.sources {
		text, err := src.Gather(ctx, query)
		if err != nil {
			slog.Warn("Context source failed, continuing without it", "query", query, "error", err)
			continue
		}
		if text == "" {
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += text
	}
	return out
}
