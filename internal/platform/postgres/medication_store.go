package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/platform/logger"
	"github.com/manodhithyaa-cs/mindful-companion/internal/store"
)

// PostgresMedicationStore implements the store.MedicationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMedicationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMedicationStore creates a new PostgreSQL implementation of
// the MedicationStore interface. If logger is nil, the default logger is used.
func NewPostgresMedicationStore(db store.DBTX, log *slog.Logger) *PostgresMedicationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresMedicationStore{
		db:     db,
		logger: log.With(slog.String("component", "medication_store")),
	}
}

// Ensure PostgresMedicationStore implements store.MedicationStore interface
var _ store.MedicationStore = (*PostgresMedicationStore)(nil)

// Create implements store.MedicationStore.Create
// Returns store.ErrInvalidEntity if the user does not exist.
func (s *PostgresMedicationStore) Create(ctx context.Context, med *domain.Medication) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := med.Validate(); err != nil {
		log.Warn("medication validation failed during create",
			slog.String("error", err.Error()),
			slog.String("medication_id", med.ID.String()))
		return err
	}

	query := `
		INSERT INTO medications
			(id, user_id, name, dosage, frequency_per_day, reminder_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		med.ID,
		med.UserID,
		med.Name,
		med.Dosage,
		med.FrequencyPerDay,
		med.ReminderTime,
		med.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, med.UserID)
		}

		log.Error("failed to create medication",
			slog.String("error", err.Error()),
			slog.String("medication_id", med.ID.String()))
		return mapError(err)
	}

	log.Info("medication created",
		slog.String("medication_id", med.ID.String()),
		slog.String("user_id", med.UserID.String()))
	return nil
}

// GetByID implements store.MedicationStore.GetByID
// Returns store.ErrMedicationNotFound if the medication does not exist.
func (s *PostgresMedicationStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Medication, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, dosage, frequency_per_day, reminder_time, created_at
		FROM medications
		WHERE id = $1
	`
	var med domain.Medication
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&med.ID,
		&med.UserID,
		&med.Name,
		&med.Dosage,
		&med.FrequencyPerDay,
		&med.ReminderTime,
		&med.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMedicationNotFound
		}
		log.Error("failed to get medication",
			slog.String("error", err.Error()),
			slog.String("medication_id", id.String()))
		return nil, mapError(err)
	}

	return &med, nil
}

// ListByUser implements store.MedicationStore.ListByUser
func (s *PostgresMedicationStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Medication, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, dosage, frequency_per_day, reminder_time, created_at
		FROM medications
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list medications",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	meds := make([]*domain.Medication, 0)
	for rows.Next() {
		var med domain.Medication
		if err := rows.Scan(
			&med.ID,
			&med.UserID,
			&med.Name,
			&med.Dosage,
			&med.FrequencyPerDay,
			&med.ReminderTime,
			&med.CreatedAt,
		); err != nil {
			log.Error("failed to scan medication row",
				slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		meds = append(meds, &med)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return meds, nil
}

// Delete implements store.MedicationStore.Delete
// Returns store.ErrMedicationNotFound if the medication does not exist.
func (s *PostgresMedicationStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete medication",
			slog.String("error", err.Error()),
			slog.String("medication_id", id.String()))
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return store.ErrMedicationNotFound
	}

	log.Info("medication deleted",
		slog.String("medication_id", id.String()))
	return nil
}

// WithTx implements store.MedicationStore.WithTx
func (s *PostgresMedicationStore) WithTx(tx *sql.Tx) store.MedicationStore {
	return &PostgresMedicationStore{
		db:     tx,
		logger: s.logger,
	}
}
