package reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"whattohack-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStore keeps the catalog in the reports table.
type PostgresStore struct {
	DB *gorm.DB
}

// NewPostgresStore wraps an open connection. Call Seed to load the
// built-in catalog.
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// Seed inserts every report whose name is not stored yet. Existing rows
// win so regenerated reports survive restarts.
func (s *PostgresStore) Seed(ctx context.Context, seed []models.Report) error {
	for _, r := range seed {
		row := r.ToRow()
		res := s.DB.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "normalized_name"}}, DoNothing: true}).
			Create(&row)
		if res.Error != nil {
			return fmt.Errorf("failed to seed report %q: %w", r.HackathonName, res.Error)
		}
	}
	slog.Info("Report catalog seeded", "count", len(seed))
	return nil
}

func (s *PostgresStore) Lookup(ctx context.Context, name string) (models.Report, error) {
	var row models.ReportRow
	err := s.DB.WithContext(ctx).Where("normalized_name = ?", models.NormalizeName(name)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Report{}, ErrNotFound
	}
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to look up report: %w", err)
	}
	return row.Report(), nil
}

func (s *PostgresStore) Has(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.ReportRow{}).
		Where("normalized_name = ?", models.NormalizeName(name)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check report: %w", err)
	}
	return count > 0, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, report models.Report) error {
	row := report.ToRow()
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "normalized_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"hackathon_name", "generated_at", "instant", "hackathon", "ideas", "leverages", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		slog.Error("Failed to store report", "name", report.HackathonName, "error", err)
		return fmt.Errorf("failed to store report: %w", err)
	}
	slog.Info("Stored report", "name", report.HackathonName)
	return nil
}

func (s *PostgresStore) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := s.DB.WithContext(ctx).Model(&models.ReportRow{}).Order("id").Pluck("hackathon_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return names, nil
}

func (s *PostgresStore) Suggest(ctx context.Context, query string) ([]string, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, err
	}
	return suggest(names, query), nil
}
