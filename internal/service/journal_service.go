package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/domain/sentiment"
	"github.com/manodhithyaa-cs/mindful-companion/internal/events"
	"github.com/manodhithyaa-cs/mindful-companion/internal/store"
)

// JournalService provides journal entry operations. Entries are classified
// on creation; the stored sentiment never changes afterwards.
type JournalService interface {
	// CreateEntry classifies the content, persists the entry, and emits a
	// risk event when the classifier flags the text.
	CreateEntry(ctx context.Context, userID uuid.UUID, content string) (*domain.JournalEntry, error)

	// ListEntries retrieves all journal entries for the user, newest first.
	ListEntries(ctx context.Context, userID uuid.UUID) ([]*domain.JournalEntry, error)
}

// journalServiceImpl implements the JournalService interface
type journalServiceImpl struct {
	journalStore store.JournalStore
	eventEmitter events.EventEmitter
	db           *sql.DB
	logger       *slog.Logger
}

// NewJournalService creates a new JournalService
func NewJournalService(
	journalStore store.JournalStore,
	eventEmitter events.EventEmitter,
	db *sql.DB,
	logger *slog.Logger,
) JournalService {
	return &journalServiceImpl{
		journalStore: journalStore,
		eventEmitter: eventEmitter,
		db:           db,
		logger:       logger.With("component", "journal_service"),
	}
}

// CreateEntry classifies the content and persists the resulting entry.
// Classification happens before the transaction so a failed insert never
// leaves a half-classified entry behind.
func (s *journalServiceImpl) CreateEntry(
	ctx context.Context,
	userID uuid.UUID,
	content string,
) (*domain.JournalEntry, error) {
	result := sentiment.Classify(content)

	entry, err := domain.NewJournalEntry(userID, content, result.Score, result.Emotion, result.RiskFlag)
	if err != nil {
		s.logger.Debug("journal entry rejected by validation",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.journalStore.WithTx(tx)
		return txStore.Create(ctx, entry)
	})
	if err != nil {
		s.logger.Error("failed to save journal entry",
			"error", err,
			"user_id", userID,
			"entry_id", entry.ID)
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.logger.Info("journal entry created",
		"entry_id", entry.ID,
		"user_id", userID,
		"sentiment_score", entry.SentimentScore,
		"emotion", entry.EmotionLabel,
		"risk_flag", entry.RiskFlag)

	if entry.RiskFlag {
		s.emitRiskEvent(ctx, entry)
	}

	return entry, nil
}

// emitRiskEvent publishes a risk-flagged event. Emission failures are
// logged but do not fail entry creation; the entry itself carries the
// flag and remains queryable.
func (s *journalServiceImpl) emitRiskEvent(ctx context.Context, entry *domain.JournalEntry) {
	event, err := events.NewEvent(events.EventTypeRiskFlagged, events.RiskFlaggedPayload{
		EntryID: entry.ID,
		UserID:  entry.UserID,
	})
	if err != nil {
		s.logger.Error("failed to create risk event",
			"error", err,
			"entry_id", entry.ID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.logger.Error("failed to emit risk event",
			"error", err,
			"entry_id", entry.ID,
			"event_id", event.ID)
	}
}

// ListEntries retrieves all journal entries for the user, newest first.
func (s *journalServiceImpl) ListEntries(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.JournalEntry, error) {
	entries, err := s.journalStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list journal entries",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return entries, nil
}
