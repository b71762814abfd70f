// Package mock answers every AI operation with fixed payloads after a delay.
package mock

import (
	"context"
	"time"

	"whattohack-api/internal/models"
)

// Generator returns canned data. It never fails except on cancellation.
type Generator struct {
	delay time.Duration
}

// New returns a mock generator that waits delay before each answer.
func New(delay time.Duration) *Generator {
	return &Generator{delay: delay}
}

// ExtractHackathonData ignores the query content; only url is echoed back.
func (g *Generator) ExtractHackathonData(ctx context.Context, url string) (models.HackathonRecord, error) {
	if err := g.wait(ctx); err != nil {
		return models.HackathonRecord{}, err
	}
	return models.HackathonRecord{
		Name:        "Supabase Launch Week Hackathon",
		Date:        "December 15-22, 2025",
		Location:    "Virtual",
		Organizer:   "Supabase",
		Sponsors:    []string{"Supabase", "Algolia", "Figma"},
		Description: "Build projects with the Supabase, Algolia and Figma APIs and show them to the teams behind them.",
		Jury:        []string{"Paul Copplestone (Supabase CEO)", "Nicolas Dessaigne (Algolia CEO)", "Dylan Field (Figma CEO)"},
		URL:         url,
	}, nil
}

func (g *Generator) AnalyzeSponsorOpportunities(ctx context.Context, p models.SponsorParams) (models.SponsorAnalysis, error) {
	if err := g.wait(ctx); err != nil {
		return models.SponsorAnalysis{}, err
	}
	return models.SponsorAnalysis{
		Sponsor: p.Sponsor,
		Opportunities: []models.Opportunity{{
			Type:        "1. Evangelization/Awareness",
			Description: "Increase product awareness among developers",
			Example:     "Run live workshops showcasing key features",
		}},
	}, nil
}

func (g *Generator) GenerateIdeas(ctx context.Context, p models.IdeasParams) ([]models.ProjectIdea, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	return []models.ProjectIdea{{
		ID:               "ai-mock-1",
		Title:            "AI-Generated Idea 1",
		Description:      "Placeholder idea returned while the AI backend runs in mock mode.",
		Score:            90,
		Category:         "AI Generated",
		Difficulty:       models.DifficultyIntermediate,
		TechRequirements: models.TechModerate,
		Sponsors:         append([]string{}, p.Sponsors...),
		Why:              "Demonstrates generated content. Switch AI_MODE to a live backend for personalized ideas.",
		Leverages:        []string{"Mock leverage point 1", "Mock leverage point 2", "Mock leverage point 3"},
		RequiredSkills:   []string{"React/TypeScript", "AI Integration", "Full-stack development"},
		EstimatedTime:    "24-36 hours",
	}}, nil
}

func (g *Generator) GenerateLeverages(ctx context.Context, p models.LeveragesParams) ([]models.Leverage, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	company := "Mock Company"
	if len(p.Sponsors) > 0 {
		company = p.Sponsors[0]
	}
	return []models.Leverage{{
		ID:              "ai-lev-mock-1",
		Leverage:        "AI-Generated Leverage",
		StrategicImpact: "Use Case Creation",
		Description:     "Placeholder leverage returned while the AI backend runs in mock mode.",
		Company:         company,
		Relevance:       models.RelevanceHigh,
	}}, nil
}

func (g *Generator) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
