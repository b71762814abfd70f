package reports

import (
	"context"
	"log/slog"
	"sync"

	"whattohack-api/internal/models"
)

// MemoryStore keeps the catalog in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []models.Report
}

// NewMemoryStore returns a store holding the given reports in order.
func NewMemoryStore(seed []models.Report) *MemoryStore {
	return &MemoryStore{entries: append([]models.Report(nil), seed...)}
}

// NewBuiltinStore returns a store preloaded with the featured catalog.
func NewBuiltinStore() *MemoryStore {
	return NewMemoryStore(Builtin())
}

func (s *MemoryStore) Lookup(_ context.Context, name string) (models.Report, error) {
	key := models.NormalizeName(name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.entries {
		if models.NormalizeName(r.HackathonName) == key {
			slog.Debug("Found report in catalog", "name", name)
			return r, nil
		}
	}
	return models.Report{}, ErrNotFound
}

func (s *MemoryStore) Has(ctx context.Context, name string) (bool, error) {
	_, err := s.Lookup(ctx, name)
	return err == nil, nil
}

func (s *MemoryStore) Upsert(_ context.Context, report models.Report) error {
	key := models.NormalizeName(report.HackathonName)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.entries {
		if models.NormalizeName(r.HackathonName) == key {
			s.entries[i] = report
			slog.Info("Updated report in catalog", "name", report.HackathonName)
			return nil
		}
	}
	s.entries = append(s.entries, report)
	slog.Info("Added report to catalog", "name", report.HackathonName)
	return nil
}

func (s *MemoryStore) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entries))
	for _, r := range s.entries {
		names = append(names, r.HackathonName)
	}
	return names, nil
}

func (s *MemoryStore) Suggest(ctx context.Context, query string) ([]string, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, err
	}
	return suggest(names, query), nil
}
