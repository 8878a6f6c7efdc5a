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

// PostgresJournalStore implements the store.JournalStore interface
// using a PostgreSQL database as the storage backend.
type PostgresJournalStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresJournalStore creates a new PostgreSQL implementation of the
// JournalStore interface. If logger is nil, the default logger is used.
func NewPostgresJournalStore(db store.DBTX, log *slog.Logger) *PostgresJournalStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresJournalStore{
		db:     db,
		logger: log.With(slog.String("component", "journal_store")),
	}
}

// Ensure PostgresJournalStore implements store.JournalStore interface
var _ store.JournalStore = (*PostgresJournalStore)(nil)

// Create implements store.JournalStore.Create
// Returns store.ErrInvalidEntity if the user does not exist.
func (s *PostgresJournalStore) Create(ctx context.Context, entry *domain.JournalEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("journal entry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	query := `
		INSERT INTO journal_entries
			(id, user_id, content, sentiment_score, emotion_label, risk_flag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.UserID,
		entry.Content,
		entry.SentimentScore,
		entry.EmotionLabel,
		entry.RiskFlag,
		entry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during journal entry creation",
				slog.String("entry_id", entry.ID.String()),
				slog.String("user_id", entry.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, entry.UserID)
		}

		log.Error("failed to create journal entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return mapError(err)
	}

	log.Debug("journal entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("emotion", entry.EmotionLabel),
		slog.Bool("risk_flag", entry.RiskFlag))
	return nil
}

// ListByUser implements store.JournalStore.ListByUser
// Entries are returned newest first.
func (s *PostgresJournalStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.JournalEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, content, sentiment_score, emotion_label, risk_flag, created_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list journal entries",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*domain.JournalEntry, 0)
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Content,
			&entry.SentimentScore,
			&entry.EmotionLabel,
			&entry.RiskFlag,
			&entry.CreatedAt,
		); err != nil {
			log.Error("failed to scan journal entry row",
				slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return entries, nil
}

// WithTx implements store.JournalStore.WithTx
func (s *PostgresJournalStore) WithTx(tx *sql.Tx) store.JournalStore {
	return &PostgresJournalStore{
		db:     tx,
		logger: s.logger,
	}
}
