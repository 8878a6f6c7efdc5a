package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
)

// JournalStore defines the interface for journal entry persistence.
// Entries are append-only: there is no update operation, because a
// journal entry is immutable once classified and stored.
type JournalStore interface {
	// Create saves a new journal entry to the store.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the user does not exist.
	Create(ctx context.Context, entry *domain.JournalEntry) error

	// ListByUser retrieves all journal entries for the given user,
	// newest first. Returns an empty slice if the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.JournalEntry, error)

	// WithTx returns a new JournalStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) JournalStore
}
