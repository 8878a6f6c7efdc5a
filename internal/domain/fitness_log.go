package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Intensity represents the self-reported effort level of a workout.
type Intensity string

// Possible intensity values
const (
	IntensityLow    Intensity = "LOW"
	IntensityMedium Intensity = "MEDIUM"
	IntensityHigh   Intensity = "HIGH"
)

// Common validation errors for FitnessLog
var (
	ErrEmptyFitnessLogID     = errors.New("fitness log ID cannot be empty")
	ErrEmptyFitnessUserID    = errors.New("fitness log user ID cannot be empty")
	ErrInvalidFitnessLogDate = errors.New("fitness log date must be a valid calendar day")
	ErrNegativeSteps         = errors.New("steps count cannot be negative")
	ErrNegativeMinutes       = errors.New("minutes exercised cannot be negative")
	ErrInvalidIntensity      = errors.New("invalid workout intensity")
)

// FitnessLog records a user's activity for a calendar day. One entry per
// day is expected but not enforced; the aggregator uses the first log it
// finds for a day.
type FitnessLog struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	LogDate           string    `json:"log_date"`
	ActivityCompleted bool      `json:"activity_completed"`
	Steps             int       `json:"steps"`
	MinutesExercised  int       `json:"minutes_exercised"`
	Intensity         Intensity `json:"intensity"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewFitnessLog creates a new FitnessLog for the given user and day.
// Returns an error if validation fails.
func NewFitnessLog(
	userID uuid.UUID,
	logDate string,
	activityCompleted bool,
	steps, minutesExercised int,
	intensity Intensity,
) (*FitnessLog, error) {
	log := &FitnessLog{
		ID:                uuid.New(),
		UserID:            userID,
		LogDate:           logDate,
		ActivityCompleted: activityCompleted,
		Steps:             steps,
		MinutesExercised:  minutesExercised,
		Intensity:         intensity,
		CreatedAt:         time.Now().UTC(),
	}

	if err := log.Validate(); err != nil {
		return nil, err
	}

	return log, nil
}

// Validate checks if the FitnessLog has valid data.
// Returns an error if any field fails validation.
func (f *FitnessLog) Validate() error {
	if f.ID == uuid.Nil {
		return ErrEmptyFitnessLogID
	}

	if f.UserID == uuid.Nil {
		return ErrEmptyFitnessUserID
	}

	if !ValidDay(f.LogDate) {
		return ErrInvalidFitnessLogDate
	}

	if f.Steps < 0 {
		return ErrNegativeSteps
	}

	if f.MinutesExercised < 0 {
		return ErrNegativeMinutes
	}

	if !isValidIntensity(f.Intensity) {
		return ErrInvalidIntensity
	}

	return nil
}

// isValidIntensity checks if the given intensity is a valid Intensity.
func isValidIntensity(intensity Intensity) bool {
	switch intensity {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	default:
		return false
	}
}
