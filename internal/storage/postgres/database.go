package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/config"
	"github.com/VitaminP8/conduit/models"
)

// Open connects to PostgreSQL using the environment configuration.
func Open() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetEnv("DB_HOST"),
		config.GetEnv("DB_USER"),
		config.GetEnv("DB_PASSWORD"),
		config.GetEnv("DB_NAME"),
		config.GetEnv("DB_PORT"),
		config.GetEnvDefault("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...).Error; err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// checkCtx honors cancellation between statements; gorm v1 predates context
// plumbing, so stores call this at entry and between the count/page
// executions of a listing.
func checkCtx(ctx context.Context) error {
	return ctx.Err()
}

// isUniqueViolation matches the duplicate-key errors of the postgres and
// sqlite drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// notFoundOr translates gorm's record-not-found into the taxonomy and wraps
// everything else.
func notFoundOr(err error, entity, key string) error {
	if gorm.IsRecordNotFoundError(err) {
		return apperrors.NotFound(entity, key)
	}
	return fmt.Errorf("could not get %s: %w", entity, err)
}
