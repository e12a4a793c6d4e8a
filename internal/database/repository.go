package database

import (
	"github.com/medusavr/moderation/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all model operations.
type Repository struct {
	violation *models.ViolationModel
	summary   *models.SummaryModel
}

// NewRepository creates a new repository with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		violation: models.NewViolation(db, logger),
		summary:   models.NewSummary(db, logger),
	}
}

// Violation returns the model for violation ledger operations.
func (r *Repository) Violation() *models.ViolationModel {
	return r.violation
}

// Summary returns the model for user violation summary operations.
func (r *Repository) Summary() *models.SummaryModel {
	return r.summary
}
