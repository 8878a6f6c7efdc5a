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

// PostgresFitnessLogStore implements the store.FitnessLogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFitnessLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFitnessLogStore creates a new PostgreSQL implementation of
// the FitnessLogStore interface. If logger is nil, the default logger is used.
func NewPostgresFitnessLogStore(db store.DBTX, log *slog.Logger) *PostgresFitnessLogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresFitnessLogStore{
		db:     db,
		logger: log.With(slog.String("component", "fitness_log_store")),
	}
}

// Ensure PostgresFitnessLogStore implements store.FitnessLogStore interface
var _ store.FitnessLogStore = (*PostgresFitnessLogStore)(nil)

// Create implements store.FitnessLogStore.Create
// Returns store.ErrInvalidEntity if the referenced user does not exist.
func (s *PostgresFitnessLogStore) Create(ctx context.Context, fitLog *domain.FitnessLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := fitLog.Validate(); err != nil {
		log.Warn("fitness log validation failed during create",
			slog.String("error", err.Error()),
			slog.String("log_id", fitLog.ID.String()))
		return err
	}

	query := `
		INSERT INTO fitness_logs
			(id, user_id, log_date, activity_completed, steps, minutes_exercised, intensity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		fitLog.ID,
		fitLog.UserID,
		fitLog.LogDate,
		fitLog.ActivityCompleted,
		fitLog.Steps,
		fitLog.MinutesExercised,
		fitLog.Intensity,
		fitLog.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, fitLog.UserID)
		}

		log.Error("failed to create fitness log",
			slog.String("error", err.Error()),
			slog.String("log_id", fitLog.ID.String()))
		return mapError(err)
	}

	log.Debug("fitness log created",
		slog.String("log_id", fitLog.ID.String()),
		slog.String("log_date", fitLog.LogDate))
	return nil
}

// ListByUser implements store.FitnessLogStore.ListByUser
func (s *PostgresFitnessLogStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.FitnessLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, log_date, activity_completed, steps, minutes_exercised, intensity, created_at
		FROM fitness_logs
		WHERE user_id = $1
		ORDER BY log_date
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list fitness logs",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	logs := make([]*domain.FitnessLog, 0)
	for rows.Next() {
		var fitLog domain.FitnessLog
		if err := rows.Scan(
			&fitLog.ID,
			&fitLog.UserID,
			&fitLog.LogDate,
			&fitLog.ActivityCompleted,
			&fitLog.Steps,
			&fitLog.MinutesExercised,
			&fitLog.Intensity,
			&fitLog.CreatedAt,
		); err != nil {
			log.Error("failed to scan fitness log row",
				slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		logs = append(logs, &fitLog)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return logs, nil
}

// WithTx implements store.FitnessLogStore.WithTx
func (s *PostgresFitnessLogStore) WithTx(tx *sql.Tx) store.FitnessLogStore {
	return &PostgresFitnessLogStore{
		db:     tx,
		logger: s.logger,
	}
}
