package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Medication
var (
	ErrEmptyMedicationID     = errors.New("medication ID cannot be empty")
	ErrEmptyMedicationUserID = errors.New("medication user ID cannot be empty")
	ErrEmptyMedicationName   = errors.New("medication name cannot be empty")
	ErrInvalidFrequency      = errors.New("medication frequency must be at least once per day")
	ErrInvalidReminderTime   = errors.New("reminder time must be in HH:MM format")
)

// Medication represents a medication a user is tracking. Deleting a
// medication cascades to all of its logs so that no log ever references
// a medication that no longer exists.
type Medication struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Dosage          string    `json:"dosage"`
	FrequencyPerDay int       `json:"frequency_per_day"`
	ReminderTime    string    `json:"reminder_time"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewMedication creates a new Medication for the given user.
// Returns an error if validation fails.
func NewMedication(
	userID uuid.UUID,
	name, dosage string,
	frequencyPerDay int,
	reminderTime string,
) (*Medication, error) {
	med := &Medication{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Dosage:          dosage,
		FrequencyPerDay: frequencyPerDay,
		ReminderTime:    reminderTime,
		CreatedAt:       time.Now().UTC(),
	}

	if err := med.Validate(); err != nil {
		return nil, err
	}

	return med, nil
}

// Validate checks if the Medication has valid data.
// Returns an error if any field fails validation.
func (m *Medication) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMedicationID
	}

	if m.UserID == uuid.Nil {
		return ErrEmptyMedicationUserID
	}

	if m.Name == "" {
		return ErrEmptyMedicationName
	}

	if m.FrequencyPerDay < 1 {
		return ErrInvalidFrequency
	}

	if _, err := time.Parse("15:04", m.ReminderTime); err != nil {
		return ErrInvalidReminderTime
	}

	return nil
}
