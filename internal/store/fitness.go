package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
)

// FitnessLogStore defines the interface for fitness log persistence.
type FitnessLogStore interface {
	// Create saves a new fitness log to the store.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the user does not exist.
	Create(ctx context.Context, log *domain.FitnessLog) error

	// ListByUser retrieves all fitness logs for the given user.
	// Returns an empty slice if the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.FitnessLog, error)

	// WithTx returns a new FitnessLogStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) FitnessLogStore
}
