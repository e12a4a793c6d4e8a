package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/medusavr/moderation/internal/database/dbretry"
	"github.com/medusavr/moderation/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SummaryModel handles database operations for per-user violation summaries.
type SummaryModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSummary creates a new SummaryModel instance.
func NewSummary(db *bun.DB, logger *zap.Logger) *SummaryModel {
	return &SummaryModel{
		db:     db,
		logger: logger.Named("db_summary"),
	}
}

// SaveSummary upserts a user's violation summary.
func (m *SummaryModel) SaveSummary(ctx context.Context, summary *types.UserViolationSummary) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().
			Model(summary).
			On("CONFLICT (user_id) DO UPDATE").
			Set("username = EXCLUDED.username").
			Set("total_violations = EXCLUDED.total_violations").
			Set("recent_violations = EXCLUDED.recent_violations").
			Set("severity_breakdown = EXCLUDED.severity_breakdown").
			Set("last_violation = EXCLUDED.last_violation").
			Set("status = EXCLUDED.status").
			Set("ban_expires_at = EXCLUDED.ban_expires_at").
			Set("restrictions_expires_at = EXCLUDED.restrictions_expires_at").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save violation summary: %w", err)
		}

		return nil
	})
}

// GetSummary retrieves a user's violation summary.
// Returns nil without error if the user has no summary yet.
func (m *SummaryModel) GetSummary(ctx context.Context, userID string) (*types.UserViolationSummary, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.UserViolationSummary, error) {
		var summary types.UserViolationSummary

		err := m.db.NewSelect().
			Model(&summary).
			Where("user_id = ?", userID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}

			return nil, fmt.Errorf("failed to get violation summary: %w", err)
		}

		return &summary, nil
	})
}
