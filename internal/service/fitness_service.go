package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/store"
)

// FitnessService provides fitness log operations.
type FitnessService interface {
	// CreateLog records a user's activity for a calendar day.
	CreateLog(
		ctx context.Context,
		userID uuid.UUID,
		logDate string,
		activityCompleted bool,
		steps, minutesExercised int,
		intensity domain.Intensity,
	) (*domain.FitnessLog, error)

	// ListLogs retrieves all fitness logs for the user.
	ListLogs(ctx context.Context, userID uuid.UUID) ([]*domain.FitnessLog, error)
}

// fitnessServiceImpl implements the FitnessService interface
type fitnessServiceImpl struct {
	fitnessStore store.FitnessLogStore
	logger       *slog.Logger
}

// NewFitnessService creates a new FitnessService
func NewFitnessService(fitnessStore store.FitnessLogStore, logger *slog.Logger) FitnessService {
	return &fitnessServiceImpl{
		fitnessStore: fitnessStore,
		logger:       logger.With("component", "fitness_service"),
	}
}

// CreateLog records a user's activity for a calendar day.
func (s *fitnessServiceImpl) CreateLog(
	ctx context.Context,
	userID uuid.UUID,
	logDate string,
	activityCompleted bool,
	steps, minutesExercised int,
	intensity domain.Intensity,
) (*domain.FitnessLog, error) {
	fitLog, err := domain.NewFitnessLog(userID, logDate, activityCompleted, steps, minutesExercised, intensity)
	if err != nil {
		s.logger.Debug("fitness log rejected by validation",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.fitnessStore.Create(ctx, fitLog); err != nil {
		s.logger.Error("failed to save fitness log",
			"error", err,
			"user_id", userID,
			"log_id", fitLog.ID)
		return nil, fmt.Errorf("failed to save fitness log: %w", err)
	}

	s.logger.Info("fitness log created",
		"log_id", fitLog.ID,
		"user_id", userID,
		"log_date", logDate)

	return fitLog, nil
}

// ListLogs retrieves all fitness logs for the user.
func (s *fitnessServiceImpl) ListLogs(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.FitnessLog, error) {
	logs, err := s.fitnessStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list fitness logs",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list fitness logs: %w", err)
	}

	return logs, nil
}
