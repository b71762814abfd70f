package planner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"whattohack-api/internal/ai"
	"whattohack-api/internal/models"
	"whattohack-api/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator implements ai.Generator with canned answers and error
// injection. Calls are counted per operation.
type fakeGenerator struct {
	mu sync.Mutex

	Record       models.HackathonRecord
	ExtractErr   error
	AfterExtract func()
	SponsorErrs  map[string]error
	Ideas        []models.ProjectIdea
	IdeasErr     error
	Leverages    []models.Leverage
	LeveragesErr error

	Calls        map[string]int
	SponsorOrder []string
	LastIdeas    models.IdeasParams
}

func newFakeGenerator() *fakeGenerator {
	return &fakeGenerator{Calls: map[string]int{}, SponsorErrs: map[string]error{}}
}

func (f *fakeGenerator) count(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[op]++
}

func (f *fakeGenerator) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		n += c
	}
	return n
}

func (f *fakeGenerator) ExtractHackathonData(_ context.Context, url string) (models.HackathonRecord, error) {
	f.count(ai.OpExtract)
	if f.ExtractErr != nil {
		return models.HackathonRecord{}, f.ExtractErr
	}
	if f.AfterExtract != nil {
		f.AfterExtract()
	}
	rec := f.Record
	rec.URL = url
	return rec, nil
}

func (f *fakeGenerator) AnalyzeSponsorOpportunities(_ context.Context, p models.SponsorParams) (models.SponsorAnalysis, error) {
	f.count(ai.OpSponsor)
	f.mu.Lock()
	f.SponsorOrder = append(f.SponsorOrder, p.Sponsor)
	f.mu.Unlock()
	if err := f.SponsorErrs[p.Sponsor]; err != nil {
		return models.SponsorAnalysis{}, err
	}
	return models.SponsorAnalysis{Sponsor: p.Sponsor, Opportunities: []models.Opportunity{}}, nil
}

func (f *fakeGenerator) GenerateIdeas(_ context.Context, p models.IdeasParams) ([]models.ProjectIdea, error) {
	f.count(ai.OpIdeas)
	f.mu.Lock()
	f.LastIdeas = p
	f.mu.Unlock()
	return f.Ideas, f.IdeasErr
}

func (f *fakeGenerator) GenerateLeverages(_ context.Context, _ models.LeveragesParams) ([]models.Leverage, error) {
	f.count(ai.OpLeverages)
	return f.Leverages, f.LeveragesErr
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

// region Load tests

func TestLoad_InstantCatalogHitMakesNoAICalls(t *testing.T) {
	gen := newFakeGenerator()
	svc := New(reports.NewBuiltinStore(), gen)

	var stages []string
	loaded, err := svc.Load(context.Background(), "Supabase Launch Week", func(stage string, _, _ int) {
		stages = append(stages, stage)
	})

	require.NoError(t, err)
	assert.Equal(t, SourceCatalog, loaded.Source)
	assert.Equal(t, "Supabase Launch Week", loaded.Record.Name)
	assert.Zero(t, gen.total())
	assert.Equal(t, []string{StageExtracting}, stages)
}

func TestLoad_InstantDelayHonored(t *testing.T) {
	svc := New(reports.NewBuiltinStore(), newFakeGenerator(), WithInstantDelay(30*time.Millisecond))

	start := time.Now()
	_, err := svc.Load(context.Background(), "hackmit 2025", nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestLoad_ExtractionThenSequentialSponsors(t *testing.T) {
	gen := newFakeGenerator()
	gen.Record = models.HackathonRecord{Name: "New Hack", Sponsors: []string{"A", "B", "C", "D"}}
	gen.SponsorErrs["B"] = errors.New("boom")
	gen.SponsorErrs["D"] = errors.New("boom")
	svc := New(reports.NewMemoryStore(nil), gen)

	var progress []int
	loaded, err := svc.Load(context.Background(), "https://new.example", func(stage string, current, total int) {
		if stage == StageAnalyzingSponsors {
			progress = append(progress, current)
			assert.Equal(t, 4, total)
		}
	})

	require.NoError(t, err)
	assert.Equal(t, SourceExtraction, loaded.Source)
	assert.Equal(t, []string{"A", "B", "C", "D"}, gen.SponsorOrder)
	require.Len(t, loaded.Record.SponsorAnalysis, 2)
	assert.Equal(t, "A", loaded.Record.SponsorAnalysis[0].Sponsor)
	assert.Equal(t, "C", loaded.Record.SponsorAnalysis[1].Sponsor)
	assert.Equal(t, []int{1, 2, 3, 4}, progress)
}

func TestLoad_ExtractionFailureUsesNonInstantFallback(t *testing.T) {
	gen := newFakeGenerator()
	gen.ExtractErr = &ai.Error{Op: ai.OpExtract, StatusCode: http.StatusUnauthorized, Err: errors.New("bad key")}
	svc := New(reports.NewBuiltinStore(), gen)

	loaded, err := svc.Load(context.Background(), "ethglobal online", nil)

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, loaded.Source)
	assert.Equal(t, "ETHGlobal Online", loaded.Record.Name)
	assert.Equal(t, 1, gen.Calls[ai.OpExtract])
	assert.Zero(t, gen.Calls[ai.OpSponsor])
}

func TestLoad_ExtractionFailureWithoutFallback(t *testing.T) {
	gen := newFakeGenerator()
	gen.ExtractErr = &ai.Error{Op: ai.OpExtract, StatusCode: http.StatusUnauthorized, Err: errors.New("bad key")}
	svc := New(reports.NewBuiltinStore(), gen)

	_, err := svc.Load(context.Background(), "https://random-unlisted-hackathon.example", nil)

	assert.True(t, ai.IsAuth(err))
}

func TestLoad_CancelledDuringInstantDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := New(reports.NewBuiltinStore(), newFakeGenerator(), WithInstantDelay(time.Hour))

	_, err := svc.Load(ctx, "HackMIT 2025", nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_CancelledAfterExtractionFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gen := newFakeGenerator()
	gen.Record = models.HackathonRecord{Name: "New Hack", Sponsors: []string{"A", "B", "C"}}
	gen.AfterExtract = cancel
	svc := New(reports.NewMemoryStore(nil), gen)

	_, err := svc.Load(ctx, "https://new.example", nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, gen.Calls[ai.OpSponsor])
}

// endregion

// region AnalyzeSponsors tests

func TestAnalyzeSponsors_NMinusK(t *testing.T) {
	for k := 0; k <= 3; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			gen := newFakeGenerator()
			sponsors := []string{"S0", "S1", "S2"}
			for i := 0; i < k; i++ {
				gen.SponsorErrs[sponsors[i]] = errors.New("fail")
			}

			got := New(reports.NewMemoryStore(nil), gen).AnalyzeSponsors(context.Background(),
				models.HackathonRecord{Name: "H", Sponsors: sponsors}, nil)

			require.Len(t, got, 3-k)
			for i, a := range got {
				assert.Equal(t, sponsors[k+i], a.Sponsor)
			}
		})
	}
}

func TestAnalyzeSponsors_DuplicateSponsorsAnalyzedEachTime(t *testing.T) {
	gen := newFakeGenerator()

	got := New(reports.NewMemoryStore(nil), gen).AnalyzeSponsors(context.Background(),
		models.HackathonRecord{Sponsors: []string{"X", "X"}}, nil)

	assert.Len(t, got, 2)
	assert.Equal(t, 2, gen.Calls[ai.OpSponsor])
}

func TestAnalyzeSponsors_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gen := newFakeGenerator()
	calls := 0

	got := New(reports.NewMemoryStore(nil), gen).AnalyzeSponsors(ctx,
		models.HackathonRecord{Sponsors: []string{"A", "B", "C"}},
		func(_ string, current, _ int) {
			calls = current
			if current == 2 {
				cancel()
			}
		})

	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"A", "B"}, gen.SponsorOrder)
	assert.Len(t, got, 2)
}

// endregion

// region Generate tests

func TestGenerate_UsesPreGeneratedReport(t *testing.T) {
	gen := newFakeGenerator()
	svc := New(reports.NewBuiltinStore(), gen)

	out, err := svc.Generate(context.Background(), GenerateRequest{Record: models.HackathonRecord{Name: "Supabase Launch Week"}})

	require.NoError(t, err)
	assert.True(t, out.FromCache)
	assert.Len(t, out.Ideas, 6)
	assert.Len(t, out.Leverages, 5)
	assert.Zero(t, gen.total())
}

func TestGenerate_BypassCacheHitsGenerator(t *testing.T) {
	gen := newFakeGenerator()
	gen.Ideas = []models.ProjectIdea{{Title: "fresh"}}
	svc := New(reports.NewBuiltinStore(), gen, WithIDFunc(sequentialIDs()))

	out, err := svc.Generate(context.Background(), GenerateRequest{
		Record:      models.HackathonRecord{Name: "Supabase Launch Week"},
		BypassCache: true,
	})

	require.NoError(t, err)
	assert.False(t, out.FromCache)
	assert.Equal(t, 1, gen.Calls[ai.OpIdeas])
	assert.Equal(t, 1, gen.Calls[ai.OpLeverages])
}

func TestGenerate_FallbackEntryWithoutReportHitsGenerator(t *testing.T) {
	gen := newFakeGenerator()
	svc := New(reports.NewBuiltinStore(), gen)

	out, err := svc.Generate(context.Background(), GenerateRequest{Record: models.HackathonRecord{Name: "ETHGlobal Online"}})

	require.NoError(t, err)
	assert.False(t, out.FromCache)
	assert.Equal(t, 1, gen.Calls[ai.OpIdeas])
}

func TestGenerate_AssignsIDsOnlyWhenMissing(t *testing.T) {
	gen := newFakeGenerator()
	gen.Ideas = []models.ProjectIdea{{ID: "keep"}, {}, {}}
	gen.Leverages = []models.Leverage{{}, {ID: "lev"}}
	svc := New(reports.NewMemoryStore(nil), gen, WithIDFunc(sequentialIDs()))

	out, err := svc.Generate(context.Background(), GenerateRequest{Record: models.HackathonRecord{Name: "H"}})

	require.NoError(t, err)
	ideaIDs := []string{out.Ideas[0].ID, out.Ideas[1].ID, out.Ideas[2].ID}
	assert.Equal(t, "keep", ideaIDs[0])
	assert.Regexp(t, `^ai-gen-id\d$`, ideaIDs[1])
	assert.Regexp(t, `^ai-gen-id\d$`, ideaIDs[2])
	assert.NotEqual(t, ideaIDs[1], ideaIDs[2])
	assert.Regexp(t, `^ai-lev-id\d$`, out.Leverages[0].ID)
	assert.Equal(t, "lev", out.Leverages[1].ID)
	assert.Empty(t, gen.Ideas[1].ID)
}

func TestGenerate_PassesProfileAndContext(t *testing.T) {
	gen := newFakeGenerator()
	svc := New(reports.NewMemoryStore(nil), gen)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Record:            models.HackathonRecord{Name: "H", Sponsors: []string{"S"}},
		Profile:           models.OnboardingProfile{TechnicalLevel: "professional", Intentions: []string{"get-hired"}},
		AdditionalContext: "we love Go",
	})

	require.NoError(t, err)
	assert.Equal(t, "professional", gen.LastIdeas.TechnicalLevel)
	assert.Equal(t, []string{"get-hired"}, gen.LastIdeas.Intentions)
	assert.Equal(t, "we love Go", gen.LastIdeas.AdditionalContext)
	assert.Equal(t, []string{"S"}, gen.LastIdeas.Sponsors)
}

func TestGenerate_EitherFailureFails(t *testing.T) {
	gen := newFakeGenerator()
	gen.LeveragesErr = errors.New("leverages down")
	svc := New(reports.NewMemoryStore(nil), gen)

	_, err := svc.Generate(context.Background(), GenerateRequest{Record: models.HackathonRecord{Name: "H"}})

	assert.EqualError(t, err, "leverages down")
}

// endregion
