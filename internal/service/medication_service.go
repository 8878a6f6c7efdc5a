package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/store"
)

// MedicationService provides medication and medication log operations.
type MedicationService interface {
	// CreateMedication creates a new medication for the user.
	CreateMedication(
		ctx context.Context,
		userID uuid.UUID,
		name, dosage string,
		frequencyPerDay int,
		reminderTime string,
	) (*domain.Medication, error)

	// ListMedications retrieves all medications for the user.
	ListMedications(ctx context.Context, userID uuid.UUID) ([]*domain.Medication, error)

	// DeleteMedication removes a medication and all of its logs in one
	// transaction. Returns ErrMedicationNotFound if the medication does not
	// exist, or ErrNotOwned if it belongs to another user.
	DeleteMedication(ctx context.Context, userID, medicationID uuid.UUID) error

	// LogTaken records that the user took a medication on the given day.
	// Returns ErrMedicationNotFound or ErrNotOwned as for DeleteMedication.
	LogTaken(ctx context.Context, userID, medicationID uuid.UUID, takenDate string) (*domain.MedicationLog, error)

	// ListLogs retrieves all medication logs for the user.
	ListLogs(ctx context.Context, userID uuid.UUID) ([]*domain.MedicationLog, error)
}

// medicationServiceImpl implements the MedicationService interface
type medicationServiceImpl struct {
	medicationStore store.MedicationStore
	logStore        store.MedicationLogStore
	db              *sql.DB
	logger          *slog.Logger
}

// NewMedicationService creates a new MedicationService
func NewMedicationService(
	medicationStore store.MedicationStore,
	logStore store.MedicationLogStore,
	db *sql.DB,
	logger *slog.Logger,
) MedicationService {
	return &medicationServiceImpl{
		medicationStore: medicationStore,
		logStore:        logStore,
		db:              db,
		logger:          logger.With("component", "medication_service"),
	}
}

// CreateMedication creates a new medication for the user.
func (s *medicationServiceImpl) CreateMedication(
	ctx context.Context,
	userID uuid.UUID,
	name, dosage string,
	frequencyPerDay int,
	reminderTime string,
) (*domain.Medication, error) {
	med, err := domain.NewMedication(userID, name, dosage, frequencyPerDay, reminderTime)
	if err != nil {
		s.logger.Debug("medication rejected by validation",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.medicationStore.Create(ctx, med); err != nil {
		s.logger.Error("failed to save medication",
			"error", err,
			"user_id", userID,
			"medication_id", med.ID)
		return nil, fmt.Errorf("failed to save medication: %w", err)
	}

	s.logger.Info("medication created",
		"medication_id", med.ID,
		"user_id", userID)

	return med, nil
}

// ListMedications retrieves all medications for the user.
func (s *medicationServiceImpl) ListMedications(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Medication, error) {
	meds, err := s.medicationStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list medications",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}

	return meds, nil
}

// DeleteMedication removes a medication and all of its logs in a single
// transaction. Logs go first so the aggregator never sees a log whose
// medication is already gone.
func (s *medicationServiceImpl) DeleteMedication(
	ctx context.Context,
	userID, medicationID uuid.UUID,
) error {
	if err := s.checkOwnership(ctx, userID, medicationID); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txLogs := s.logStore.WithTx(tx)
		if err := txLogs.DeleteByMedication(ctx, medicationID); err != nil {
			return fmt.Errorf("failed to delete medication logs: %w", err)
		}

		txMeds := s.medicationStore.WithTx(tx)
		if err := txMeds.Delete(ctx, medicationID); err != nil {
			return fmt.Errorf("failed to delete medication: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrMedicationNotFound) {
			return ErrMedicationNotFound
		}
		s.logger.Error("failed to delete medication",
			"error", err,
			"user_id", userID,
			"medication_id", medicationID)
		return err
	}

	s.logger.Info("medication deleted with its logs",
		"medication_id", medicationID,
		"user_id", userID)

	return nil
}

// LogTaken records that the user took a medication on the given day.
func (s *medicationServiceImpl) LogTaken(
	ctx context.Context,
	userID, medicationID uuid.UUID,
	takenDate string,
) (*domain.MedicationLog, error) {
	if err := s.checkOwnership(ctx, userID, medicationID); err != nil {
		return nil, err
	}

	medLog, err := domain.NewMedicationLog(userID, medicationID, takenDate)
	if err != nil {
		s.logger.Debug("medication log rejected by validation",
			"error", err,
			"user_id", userID,
			"medication_id", medicationID)
		return nil, err
	}

	if err := s.logStore.Create(ctx, medLog); err != nil {
		s.logger.Error("failed to save medication log",
			"error", err,
			"medication_id", medicationID)
		return nil, fmt.Errorf("failed to save medication log: %w", err)
	}

	s.logger.Info("medication log created",
		"log_id", medLog.ID,
		"medication_id", medicationID,
		"taken_date", takenDate)

	return medLog, nil
}

// ListLogs retrieves all medication logs for the user.
func (s *medicationServiceImpl) ListLogs(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.MedicationLog, error) {
	logs, err := s.logStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list medication logs",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list medication logs: %w", err)
	}

	return logs, nil
}

// checkOwnership verifies the medication exists and belongs to the user.
func (s *medicationServiceImpl) checkOwnership(
	ctx context.Context,
	userID, medicationID uuid.UUID,
) error {
	med, err := s.medicationStore.GetByID(ctx, medicationID)
	if err != nil {
		if errors.Is(err, store.ErrMedicationNotFound) {
			return ErrMedicationNotFound
		}
		s.logger.Error("failed to retrieve medication",
			"error", err,
			"medication_id", medicationID)
		return fmt.Errorf("failed to retrieve medication: %w", err)
	}

	if med.UserID != userID {
		s.logger.Warn("medication ownership check failed",
			"medication_id", medicationID,
			"owner_id", med.UserID,
			"requester_id", userID)
		return ErrNotOwned
	}

	return nil
}
