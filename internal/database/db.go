package database

import (
	"fmt"
	"log/slog"

	"whattohack-api/internal/config"
	"whattohack-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds the PostgreSQL connection string from the configuration.
func DSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort)
}

// Init connects to PostgreSQL and migrates the report catalog table.
func Init(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err, "host", cfg.DBHost)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Info("Connected to PostgreSQL", "host", cfg.DBHost, "db", cfg.DBName)

	if err := db.AutoMigrate(&models.ReportRow{}); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Report catalog schema synchronized")
	return db, nil
}
