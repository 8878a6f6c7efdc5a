package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
)

// MedicationStore defines the interface for medication persistence.
type MedicationStore interface {
	// Create saves a new medication to the store.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the user does not exist.
	Create(ctx context.Context, med *domain.Medication) error

	// GetByID retrieves a medication by its unique ID.
	// Returns ErrMedicationNotFound if the medication does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Medication, error)

	// ListByUser retrieves all medications for the given user.
	// Returns an empty slice if the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Medication, error)

	// Delete removes a medication from the store by its ID.
	// Returns ErrMedicationNotFound if the medication does not exist.
	// Callers must delete the medication's logs in the same transaction
	// so the aggregator never sees a log without its medication.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new MedicationStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) MedicationStore
}

// MedicationLogStore defines the interface for medication log persistence.
type MedicationLogStore interface {
	// Create saves a new medication log to the store.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the referenced medication does not exist.
	Create(ctx context.Context, log *domain.MedicationLog) error

	// ListByUser retrieves all medication logs for the given user.
	// Returns an empty slice if the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.MedicationLog, error)

	// DeleteByMedication removes all logs referencing the given medication.
	// Deleting zero logs is not an error.
	DeleteByMedication(ctx context.Context, medicationID uuid.UUID) error

	// WithTx returns a new MedicationLogStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) MedicationLogStore
}
