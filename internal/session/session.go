// Package session holds the per-visitor view state machine: the landing,
// onboarding and results screens, the one-shot automatic generation and the
// notices shown after each action.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"whattohack-api/internal/catalog"
	"whattohack-api/internal/models"
	"whattohack-api/internal/planner"
)

var (
	ErrNotFound          = errors.New("session not found")
	ErrBusy              = errors.New("another action is in progress")
	ErrInvalidTransition = errors.New("action not allowed on current screen")
	ErrEmptyQuery        = errors.New("query is required")
	ErrInvalidProfile    = errors.New("invalid onboarding profile")
)

type Screen string

const (
	ScreenLanding    Screen = "landing"
	ScreenOnboarding Screen = "onboarding"
	ScreenResults    Screen = "results"
)

// GenerationState tracks idea generation for the current results visit.
// Automatic generation only starts from idle.
type GenerationState string

const (
	GenerationIdle       GenerationState = "idle"
	GenerationGenerating GenerationState = "generating"
	GenerationReady      GenerationState = "ready"
	GenerationFailed     GenerationState = "failed"
)

// Engine loads hackathons and generates reports. *planner.Service
// satisfies it.
type Engine interface {
	Load(ctx context.Context, query string, progress planner.ProgressFunc) (planner.Loaded, error)
	Generate(ctx context.Context, req planner.GenerateRequest) (planner.Generated, error)
}

// Progress describes the stage of an in-flight search.
type Progress struct {
	Stage   string `json:"stage"`
	Current int    `json:"current,omitempty"`
	Total   int    `json:"total,omitempty"`
}

// View is a point-in-time copy of a session.
type View struct {
	ID                string                   `json:"id"`
	Screen            Screen                   `json:"screen"`
	Query             string                   `json:"query"`
	Hackathon         *models.HackathonRecord  `json:"hackathon"`
	Source            planner.Source           `json:"source,omitempty"`
	Profile           models.OnboardingProfile `json:"profile"`
	AdditionalContext string                   `json:"additionalContext"`
	Generation        GenerationState          `json:"generation"`
	FromCache         bool                     `json:"fromCache"`
	IdeaCount         int                      `json:"ideaCount"`
	LeverageCount     int                      `json:"leverageCount"`
	Busy              bool                     `json:"busy"`
	Progress          *Progress                `json:"progress,omitempty"`
	Notice            *Notice                  `json:"notice,omitempty"`
}

// Session is one visitor's state. The mutex guards every field and is
// never held while the engine runs.
type Session struct {
	ID string

	engine Engine

	mu                sync.Mutex
	screen            Screen
	query             string
	record            *models.HackathonRecord
	source            planner.Source
	profile           models.OnboardingProfile
	additionalContext string
	generation        GenerationState
	ideas             []models.ProjectIdea
	leverages         []models.Leverage
	fromCache         bool
	busy              bool
	progress          *Progress
	notice            *Notice
	lastSeen          time.Time
}

func newSession(id string, engine Engine) *Session {
	return &Session{
		ID:         id,
		engine:     engine,
		screen:     ScreenLanding,
		generation: GenerationIdle,
		lastSeen:   time.Now(),
	}
}

// Search resolves query to a hackathon and moves to onboarding. On failure
// the screen, record and query are left unchanged and a notice is recorded.
func (s *Session) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}
	if err := s.begin(ScreenLanding); err != nil {
		return err
	}

	loaded, err := s.engine.Load(ctx, query, s.setProgress)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	s.progress = nil
	if err != nil {
		slog.Error("Search failed", "session", s.ID, "query", query, "error", err)
		s.notice = searchFailedNotice(err)
		return err
	}

	rec := loaded.Record
	s.record = &rec
	s.source = loaded.Source
	s.query = query
	s.screen = ScreenOnboarding
	s.generation = GenerationIdle
	s.notice = searchNotice(loaded.Source)
	return nil
}

// CompleteOnboarding stores the profile, moves to results and runs the
// automatic generation.
func (s *Session) CompleteOnboarding(ctx context.Context, profile models.OnboardingProfile) error {
	p, err := profile.Normalize()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return s.enterResults(ctx, p)
}

// SkipOnboarding moves to results with an empty profile and runs the
// automatic generation.
func (s *Session) SkipOnboarding(ctx context.Context) error {
	return s.enterResults(ctx, models.OnboardingProfile{})
}

// enterResults leaves onboarding. A generation failure here is reported
// through the notice only, the transition itself has succeeded.
func (s *Session) enterResults(ctx context.Context, profile models.OnboardingProfile) error {
	if err := s.begin(ScreenOnboarding); err != nil {
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.screen = ScreenResults
	auto := s.generation == GenerationIdle
	s.mu.Unlock()

	if !auto {
		s.finish()
		return nil
	}
	_ = s.generate(ctx, false)
	return nil
}

// Regenerate always asks the AI for a fresh report. Prior results are kept
// when it fails.
func (s *Session) Regenerate(ctx context.Context) error {
	if err := s.begin(ScreenResults); err != nil {
		return err
	}
	return s.generate(ctx, true)
}

// generate runs with the busy latch held and releases it.
func (s *Session) generate(ctx context.Context, bypassCache bool) error {
	s.mu.Lock()
	req := planner.GenerateRequest{
		Record:            *s.record,
		Profile:           s.profile,
		AdditionalContext: s.additionalContext,
		BypassCache:       bypassCache,
	}
	s.generation = GenerationGenerating
	s.mu.Unlock()

	out, err := s.engine.Generate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		slog.Error("Report generation failed", "session", s.ID, "hackathon", req.Record.Name, "error", err)
		s.generation = GenerationFailed
		s.notice = generationFailedNotice(bypassCache)
		return err
	}

	s.ideas = out.Ideas
	s.leverages = out.Leverages
	s.fromCache = out.FromCache
	s.generation = GenerationReady
	s.notice = generationNotice(out.FromCache)
	return nil
}

// Back returns to landing and clears the record, query, profile, context
// and results.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	if s.screen == ScreenLanding {
		return ErrInvalidTransition
	}

	s.screen = ScreenLanding
	s.query = ""
	s.record = nil
	s.source = ""
	s.profile = models.OnboardingProfile{}
	s.additionalContext = ""
	s.generation = GenerationIdle
	s.ideas = nil
	s.leverages = nil
	s.fromCache = false
	s.notice = nil
	s.lastSeen = time.Now()
	return nil
}

// SetContext stores free text passed to the next generation.
func (s *Session) SetContext(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	if s.screen == ScreenLanding {
		return ErrInvalidTransition
	}
	s.additionalContext = strings.TrimSpace(text)
	s.lastSeen = time.Now()
	return nil
}

// Ideas returns the starter ideas for the record's sponsors followed by the
// generated ideas, filtered and sorted.
func (s *Session) Ideas(f catalog.Filters, sortBy string) []models.ProjectIdea {
	s.mu.Lock()
	var sponsors []string
	if s.record != nil {
		sponsors = s.record.Sponsors
	}
	combined := catalog.Combine(sponsors, s.ideas)
	s.mu.Unlock()

	return catalog.Derive(combined, f, sortBy)
}

func (s *Session) Leverages() []models.Leverage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Leverage{}, s.leverages...)
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:                s.ID,
		Screen:            s.screen,
		Query:             s.query,
		Source:            s.source,
		Profile:           s.profile,
		AdditionalContext: s.additionalContext,
		Generation:        s.generation,
		FromCache:         s.fromCache,
		IdeaCount:         len(s.ideas),
		LeverageCount:     len(s.leverages),
		Busy:              s.busy,
	}
	if v.Profile.Intentions == nil {
		v.Profile.Intentions = []string{}
	}
	if s.record != nil {
		rec := *s.record
		v.Hackathon = &rec
	}
	if s.progress != nil {
		p := *s.progress
		v.Progress = &p
	}
	if s.notice != nil {
		n := *s.notice
		v.Notice = &n
	}
	return v
}

// begin takes the busy latch for an action allowed on screen.
func (s *Session) begin(screen Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	if s.screen != screen {
		return ErrInvalidTransition
	}
	s.busy = true
	s.notice = nil
	s.lastSeen = time.Now()
	return nil
}

func (s *Session) finish() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Session) setProgress(stage string, current, total int) {
	s.mu.Lock()
	s.progress = &Progress{Stage: stage, Current: current, Total: total}
	s.mu.Unlock()
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen, s.busy
}
