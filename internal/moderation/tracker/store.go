package tracker

import (
	"context"

	"github.com/medusavr/moderation/internal/database"
	"github.com/medusavr/moderation/internal/database/types"
)

// Store is the durable backing for the violation ledger and per-user
// summaries. Production uses Postgres; tests substitute an in-memory fake.
type Store interface {
	SaveViolation(ctx context.Context, violation *types.Violation) error
	GetUserViolations(ctx context.Context, userID string) ([]*types.Violation, error)
	SaveSummary(ctx context.Context, summary *types.UserViolationSummary) error
	GetSummary(ctx context.Context, userID string) (*types.UserViolationSummary, error)
}

// dbStore adapts the database client to the Store interface.
type dbStore struct {
	db database.Client
}

// NewDatabaseStore creates a Store backed by the Postgres repository.
func NewDatabaseStore(db database.Client) Store {
	return &dbStore{db: db}
}

func (s *dbStore) SaveViolation(ctx context.Context, violation *types.Violation) error {
	return s.db.Model().Violation().SaveViolation(ctx, violation)
}

func (s *dbStore) GetUserViolations(ctx context.Context, userID string) ([]*types.Violation, error) {
	return s.db.Model().Violation().GetUserViolations(ctx, userID)
}

func (s *dbStore) SaveSummary(ctx context.Context, summary *types.UserViolationSummary) error {
	return s.db.Model().Summary().SaveSummary(ctx, summary)
}

func (s *dbStore) GetSummary(ctx context.Context, userID string) (*types.UserViolationSummary, error) {
	return s.db.Model().Summary().GetSummary(ctx, userID)
}
