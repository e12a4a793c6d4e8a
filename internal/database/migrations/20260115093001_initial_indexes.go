package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- Violation history lookups are always user-scoped and time-ordered
			CREATE INDEX IF NOT EXISTS idx_violations_user_time
			ON violations (user_id, timestamp);

			-- Moderator review queue
			CREATE INDEX IF NOT EXISTS idx_violations_unresolved
			ON violations (severity DESC, timestamp DESC)
			WHERE NOT resolved;

			-- Expiry sweeps over restricted and suspended users
			CREATE INDEX IF NOT EXISTS idx_summaries_status
			ON user_violation_summaries (status)
			WHERE status != 0;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_violations_user_time;
			DROP INDEX IF EXISTS idx_violations_unresolved;
			DROP INDEX IF EXISTS idx_summaries_status;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop indexes: %w", err)
		}

		return nil
	})
}
