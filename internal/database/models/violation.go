package models

import (
	"context"
	"fmt"
	"time"

	"github.com/medusavr/moderation/internal/database/dbretry"
	"github.com/medusavr/moderation/internal/database/types"
	"github.com/medusavr/moderation/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ViolationModel handles database operations for the violation ledger.
// Violations are append-only; only the moderator review fields are updated
// after creation so the audit trail stays intact.
type ViolationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewViolation creates a new ViolationModel instance.
func NewViolation(db *bun.DB, logger *zap.Logger) *ViolationModel {
	return &ViolationModel{
		db:     db,
		logger: logger.Named("db_violation"),
	}
}

// SaveViolation appends a violation record.
func (m *ViolationModel) SaveViolation(ctx context.Context, record *types.Violation) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().
			Model(record).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save violation: %w", err)
		}

		return nil
	})
}

// GetUserViolations retrieves the full violation history for a user,
// oldest first.
func (m *ViolationModel) GetUserViolations(ctx context.Context, userID string) ([]*types.Violation, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Violation, error) {
		var violations []*types.Violation

		err := m.db.NewSelect().
			Model(&violations).
			Where("user_id = ?", userID).
			Order("timestamp ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get user violations: %w", err)
		}

		return violations, nil
	})
}

// CountRecentViolations counts a user's violations since the given time.
func (m *ViolationModel) CountRecentViolations(ctx context.Context, userID string, since time.Time) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := m.db.NewSelect().
			Model((*types.Violation)(nil)).
			Where("user_id = ?", userID).
			Where("timestamp >= ?", since).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count recent violations: %w", err)
		}

		return count, nil
	})
}

// ReviewViolation applies a moderator's review to a violation.
// Returns true if the violation existed.
func (m *ViolationModel) ReviewViolation(
	ctx context.Context, violationID string, action enum.Action, notes string,
) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		result, err := m.db.NewUpdate().
			Model((*types.Violation)(nil)).
			Set("resolved = ?", true).
			Set("moderator_action = ?", action).
			Set("moderator_notes = ?", notes).
			Where("id = ?", violationID).
			Exec(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to review violation: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return false, err
		}

		return affected > 0, nil
	})
}

// GetUnresolvedViolations retrieves violations awaiting moderator review,
// most severe and most recent first.
func (m *ViolationModel) GetUnresolvedViolations(ctx context.Context, limit int) ([]*types.Violation, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Violation, error) {
		var violations []*types.Violation

		query := m.db.NewSelect().
			Model(&violations).
			Where("resolved = ?", false).
			Order("severity DESC").
			Order("timestamp DESC")

		if limit > 0 {
			query = query.Limit(limit)
		}

		if err := query.Scan(ctx); err != nil {
			return nil, fmt.Errorf("failed to get unresolved violations: %w", err)
		}

		return violations, nil
	})
}
