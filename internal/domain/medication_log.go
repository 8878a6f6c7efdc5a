package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for MedicationLog
var (
	ErrEmptyMedicationLogID  = errors.New("medication log ID cannot be empty")
	ErrEmptyLogUserID        = errors.New("medication log user ID cannot be empty")
	ErrEmptyLogMedicationID  = errors.New("medication log medication ID cannot be empty")
	ErrInvalidLogTakenDate   = errors.New("medication log taken date must be a valid calendar day")
	ErrMedicationLogNotTaken = errors.New("medication logs record taken events only")
)

// MedicationLog records that a medication was taken on a calendar day.
// Only positive events are logged; a missing log for a day means the
// medication was not marked taken, not that it was skipped explicitly.
type MedicationLog struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	MedicationID uuid.UUID `json:"medication_id"`
	TakenDate    string    `json:"taken_date"`
	Taken        bool      `json:"taken"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewMedicationLog creates a taken-event log for the given medication and day.
// Returns an error if validation fails.
func NewMedicationLog(userID, medicationID uuid.UUID, takenDate string) (*MedicationLog, error) {
	log := &MedicationLog{
		ID:           uuid.New(),
		UserID:       userID,
		MedicationID: medicationID,
		TakenDate:    takenDate,
		Taken:        true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := log.Validate(); err != nil {
		return nil, err
	}

	return log, nil
}

// Validate checks if the MedicationLog has valid data.
// Returns an error if any field fails validation.
func (l *MedicationLog) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyMedicationLogID
	}

	if l.UserID == uuid.Nil {
		return ErrEmptyLogUserID
	}

	if l.MedicationID == uuid.Nil {
		return ErrEmptyLogMedicationID
	}

	if !ValidDay(l.TakenDate) {
		return ErrInvalidLogTakenDate
	}

	if !l.Taken {
		return ErrMedicationLogNotTaken
	}

	return nil
}
