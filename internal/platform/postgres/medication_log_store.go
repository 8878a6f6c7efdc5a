package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/platform/logger"
	"github.com/manodhithyaa-cs/mindful-companion/internal/store"
)

// PostgresMedicationLogStore implements the store.MedicationLogStore
// interface using a PostgreSQL database as the storage backend.
type PostgresMedicationLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMedicationLogStore creates a new PostgreSQL implementation of
// the MedicationLogStore interface. If logger is nil, the default logger is used.
func NewPostgresMedicationLogStore(db store.DBTX, log *slog.Logger) *PostgresMedicationLogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresMedicationLogStore{
		db:     db,
		logger: log.With(slog.String("component", "medication_log_store")),
	}
}

// Ensure PostgresMedicationLogStore implements store.MedicationLogStore interface
var _ store.MedicationLogStore = (*PostgresMedicationLogStore)(nil)

// Create implements store.MedicationLogStore.Create
// Returns store.ErrInvalidEntity if the referenced medication does not exist.
func (s *PostgresMedicationLogStore) Create(ctx context.Context, medLog *domain.MedicationLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := medLog.Validate(); err != nil {
		log.Warn("medication log validation failed during create",
			slog.String("error", err.Error()),
			slog.String("log_id", medLog.ID.String()))
		return err
	}

	query := `
		INSERT INTO medication_logs
			(id, user_id, medication_id, taken_date, taken, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		medLog.ID,
		medLog.UserID,
		medLog.MedicationID,
		medLog.TakenDate,
		medLog.Taken,
		medLog.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: medication with ID %s not found",
				store.ErrInvalidEntity, medLog.MedicationID)
		}

		log.Error("failed to create medication log",
			slog.String("error", err.Error()),
			slog.String("log_id", medLog.ID.String()))
		return mapError(err)
	}

	log.Debug("medication log created",
		slog.String("log_id", medLog.ID.String()),
		slog.String("medication_id", medLog.MedicationID.String()),
		slog.String("taken_date", medLog.TakenDate))
	return nil
}

// ListByUser implements store.MedicationLogStore.ListByUser
func (s *PostgresMedicationLogStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.MedicationLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, medication_id, taken_date, taken, created_at
		FROM medication_logs
		WHERE user_id = $1
		ORDER BY taken_date
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list medication logs",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	logs := make([]*domain.MedicationLog, 0)
	for rows.Next() {
		var medLog domain.MedicationLog
		if err := rows.Scan(
			&medLog.ID,
			&medLog.UserID,
			&medLog.MedicationID,
			&medLog.TakenDate,
			&medLog.Taken,
			&medLog.CreatedAt,
		); err != nil {
			log.Error("failed to scan medication log row",
				slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		logs = append(logs, &medLog)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return logs, nil
}

// DeleteByMedication implements store.MedicationLogStore.DeleteByMedication
// Deleting zero logs is not an error.
func (s *PostgresMedicationLogStore) DeleteByMedication(
	ctx context.Context,
	medicationID uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(
		ctx,
		`DELETE FROM medication_logs WHERE medication_id = $1`,
		medicationID,
	)
	if err != nil {
		log.Error("failed to delete medication logs",
			slog.String("error", err.Error()),
			slog.String("medication_id", medicationID.String()))
		return mapError(err)
	}

	return nil
}

// WithTx implements store.MedicationLogStore.WithTx
func (s *PostgresMedicationLogStore) WithTx(tx *sql.Tx) store.MedicationLogStore {
	return &PostgresMedicationLogStore{
		db:     tx,
		logger: s.logger,
	}
}
