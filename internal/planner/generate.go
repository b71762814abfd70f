package planner

import (
	"context"
	"log/slog"

	"whattohack-api/internal/models"

	"golang.org/x/sync/errgroup"
)

// GenerateRequest is the input of idea and leverage generation.
type GenerateRequest struct {
	Record            models.HackathonRecord
	Profile           models.OnboardingProfile
	AdditionalContext string
	// BypassCache skips the pre-generated report, as a manual regenerate does.
	BypassCache bool
}

// Generated holds one generation's ideas and leverages.
type Generated struct {
	Ideas     []models.ProjectIdea
	Leverages []models.Leverage
	FromCache bool
}

// Generate returns the pre-generated report for the hackathon when one
// exists and the cache is not bypassed. Otherwise it asks the generator for
// ideas and leverages concurrently; either failure fails the call.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (Generated, error) {
	if !req.BypassCache {
		if entry, ok := s.lookup(ctx, req.Record.Name); ok && entry.HasReport() {
			slog.Info("Loading pre-generated report", "hackathon", req.Record.Name)
			return Generated{
				Ideas:     append([]models.ProjectIdea{}, entry.Ideas...),
				Leverages: append([]models.Leverage{}, entry.Leverages...),
				FromCache: true,
			}, nil
		}
	}

	slog.Info("Generating report", "hackathon", req.Record.Name, "bypass_cache", req.BypassCache)

	var (
		ideas     []models.ProjectIdea
		leverages []models.Leverage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ideas, err = s.gen.GenerateIdeas(gctx, models.IdeasParams{
			HackathonName:     req.Record.Name,
			Sponsors:          req.Record.Sponsors,
			TechnicalLevel:    req.Profile.TechnicalLevel,
			CommitmentLevel:   req.Profile.CommitmentLevel,
			TeamSize:          req.Profile.TeamSize,
			Intentions:        req.Profile.Intentions,
			AdditionalContext: req.AdditionalContext,
		})
		return err
	})
	g.Go(func() error {
		var err error
		leverages, err = s.gen.GenerateLeverages(gctx, models.LeveragesParams{
			HackathonName:     req.Record.Name,
			Sponsors:          req.Record.Sponsors,
			AdditionalContext: req.AdditionalContext,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return Generated{}, err
	}

	return Generated{
		Ideas:     s.assignIdeaIDs(ideas),
		Leverages: s.assignLeverageIDs(leverages),
	}, nil
}

func (s *Service) assignIdeaIDs(ideas []models.ProjectIdea) []models.ProjectIdea {
	out := make([]models.ProjectIdea, len(ideas))
	for i, idea := range ideas {
		if idea.ID == "" {
			idea.ID = "ai-gen-" + s.newID()
		}
		out[i] = idea
	}
	return out
}

func (s *Service) assignLeverageIDs(leverages []models.Leverage) []models.Leverage {
	out := make([]models.Leverage, len(leverages))
	for i, l := range leverages {
		if l.ID == "" {
			l.ID = "ai-lev-" + s.newID()
		}
		out[i] = l
	}
	return out
}
