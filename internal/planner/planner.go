// Package planner orchestrates catalog lookups and AI calls for a search
// and for idea generation.
package planner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"whattohack-api/internal/ai"
	"whattohack-api/internal/models"
	"whattohack-api/internal/reports"

	"github.com/google/uuid"
)

// Source tells where a loaded hackathon record came from.
type Source string

const (
	SourceCatalog    Source = "catalog"
	SourceExtraction Source = "extraction"
	SourceFallback   Source = "fallback"
)

// Progress stages reported while loading.
const (
	StageExtracting        = "extracting"
	StageAnalyzingSponsors = "analyzing-sponsors"
)

// ProgressFunc receives loading progress. current and total are only
// meaningful while analyzing sponsors.
type ProgressFunc func(stage string, current, total int)

// Loaded is the outcome of a successful search.
type Loaded struct {
	Record models.HackathonRecord
	Source Source
}

// Service runs the search load sequence and report generation.
type Service struct {
	reports      reports.Store
	gen          ai.Generator
	instantDelay time.Duration
	newID        func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithInstantDelay sets the pause before a catalog hit is returned.
func WithInstantDelay(d time.Duration) Option {
	return func(s *Service) { s.instantDelay = d }
}

// WithIDFunc replaces the generator of ids for items that lack one.
func WithIDFunc(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

func New(store reports.Store, gen ai.Generator, opts ...Option) *Service {
	s := &Service{
		reports: store,
		gen:     gen,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load resolves a query to a hackathon record. Instant catalog entries are
// returned without any AI call. Otherwise the record is extracted and each
// sponsor analyzed in order; when extraction fails, any catalog entry for
// the query is used instead.
func (s *Service) Load(ctx context.Context, query string, progress ProgressFunc) (Loaded, error) {
	if progress == nil {
		progress = func(string, int, int) {}
	}

	entry, found := s.lookup(ctx, query)
	if found && entry.Instant {
		slog.Info("Using pre-generated data", "query", query)
		progress(StageExtracting, 0, 0)
		if err := sleep(ctx, s.instantDelay); err != nil {
			return Loaded{}, err
		}
		return Loaded{Record: entry.Record(), Source: SourceCatalog}, nil
	}

	progress(StageExtracting, 0, 0)
	rec, err := s.gen.ExtractHackathonData(ctx, query)
	if err != nil {
		if found {
			slog.Warn("Extraction failed, using catalog fallback", "query", query, "error", err)
			return Loaded{Record: entry.Record(), Source: SourceFallback}, nil
		}
		return Loaded{}, err
	}

	rec.SponsorAnalysis = s.AnalyzeSponsors(ctx, rec, progress)
	if err := ctx.Err(); err != nil {
		return Loaded{}, err
	}
	return Loaded{Record: rec, Source: SourceExtraction}, nil
}

type sponsorResult struct {
	analysis models.SponsorAnalysis
	err      error
}

// AnalyzeSponsors analyzes every sponsor of rec sequentially, in sponsor
// order. Failed sponsors are logged and left out of the result. The loop
// stops early once ctx is done.
func (s *Service) AnalyzeSponsors(ctx context.Context, rec models.HackathonRecord, progress ProgressFunc) []models.SponsorAnalysis {
	if progress == nil {
		progress = func(string, int, int) {}
	}

	total := len(rec.Sponsors)
	results := make([]sponsorResult, 0, total)
	for i, sponsor := range rec.Sponsors {
		if ctx.Err() != nil {
			break
		}
		progress(StageAnalyzingSponsors, i+1, total)
		a, err := s.gen.AnalyzeSponsorOpportunities(ctx, models.SponsorParams{
			Sponsor:       sponsor,
			HackathonName: rec.Name,
			Organizer:     rec.Organizer,
			Theme:         rec.Theme,
		})
		results = append(results, sponsorResult{analysis: a, err: err})
	}

	analyses := make([]models.SponsorAnalysis, 0, total)
	for i, r := range results {
		if r.err != nil {
			slog.Warn("Sponsor analysis failed, skipping", "sponsor", rec.Sponsors[i], "error", r.err)
			continue
		}
		analyses = append(analyses, r.analysis)
	}
	return analyses
}

func (s *Service) lookup(ctx context.Context, name string) (models.Report, bool) {
	entry, err := s.reports.Lookup(ctx, name)
	if err == nil {
		return entry, true
	}
	if !errors.Is(err, reports.ErrNotFound) {
		slog.Error("Report catalog lookup failed", "name", name, "error", err)
	}
	return models.Report{}, false
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
