package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain/insight"
	"github.com/manodhithyaa-cs/mindful-companion/internal/store"
)

// InsightService computes weekly insights from a user's stored records.
type InsightService interface {
	// WeeklyInsight loads the user's journals, fitness logs, medication logs,
	// and medications, and aggregates them over the trailing seven days.
	WeeklyInsight(ctx context.Context, userID uuid.UUID) (insight.WeeklyInsight, error)
}

// insightServiceImpl implements the InsightService interface
type insightServiceImpl struct {
	journalStore    store.JournalStore
	fitnessStore    store.FitnessLogStore
	logStore        store.MedicationLogStore
	medicationStore store.MedicationStore
	clock           clockwork.Clock
	logger          *slog.Logger
}

// NewInsightService creates a new InsightService. The clock is injectable
// so tests can pin the aggregation window.
func NewInsightService(
	journalStore store.JournalStore,
	fitnessStore store.FitnessLogStore,
	logStore store.MedicationLogStore,
	medicationStore store.MedicationStore,
	clock clockwork.Clock,
	logger *slog.Logger,
) InsightService {
	return &insightServiceImpl{
		journalStore:    journalStore,
		fitnessStore:    fitnessStore,
		logStore:        logStore,
		medicationStore: medicationStore,
		clock:           clock,
		logger:          logger.With("component", "insight_service"),
	}
}

// WeeklyInsight aggregates the user's records over the trailing seven days.
func (s *insightServiceImpl) WeeklyInsight(
	ctx context.Context,
	userID uuid.UUID,
) (insight.WeeklyInsight, error) {
	journals, err := s.journalStore.ListByUser(ctx, userID)
	if err != nil {
		return insight.WeeklyInsight{}, s.loadError("journal entries", userID, err)
	}

	fitnessLogs, err := s.fitnessStore.ListByUser(ctx, userID)
	if err != nil {
		return insight.WeeklyInsight{}, s.loadError("fitness logs", userID, err)
	}

	medicationLogs, err := s.logStore.ListByUser(ctx, userID)
	if err != nil {
		return insight.WeeklyInsight{}, s.loadError("medication logs", userID, err)
	}

	medications, err := s.medicationStore.ListByUser(ctx, userID)
	if err != nil {
		return insight.WeeklyInsight{}, s.loadError("medications", userID, err)
	}

	result := insight.Compute(journals, fitnessLogs, medicationLogs, medications, s.clock.Now())

	s.logger.Debug("weekly insight computed",
		"user_id", userID,
		"avg_mood", result.AvgMood,
		"journal_count", len(journals))

	return result, nil
}

func (s *insightServiceImpl) loadError(what string, userID uuid.UUID, err error) error {
	s.logger.Error("failed to load records for insight",
		"error", err,
		"records", what,
		"user_id", userID)
	return fmt.Errorf("failed to load %s: %w", what, err)
}
