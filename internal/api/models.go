package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateJournalEntryRequest defines the payload for creating a journal entry.
// Sentiment fields are derived server-side and cannot be supplied.
type CreateJournalEntryRequest struct {
	Content string `json:"content" validate:"required"`
}

// CreateMedicationRequest defines the payload for creating a medication.
type CreateMedicationRequest struct {
	Name            string `json:"name"              validate:"required"`
	Dosage          string `json:"dosage"            validate:"required"`
	FrequencyPerDay int    `json:"frequency_per_day" validate:"required,gt=0"`
	ReminderTime    string `json:"reminder_time"     validate:"required"`
}

// LogMedicationRequest defines the payload for recording a taken dose.
type LogMedicationRequest struct {
	TakenDate string `json:"taken_date" validate:"required"`
}

// CreateFitnessLogRequest defines the payload for recording a day's activity.
type CreateFitnessLogRequest struct {
	LogDate           string `json:"log_date"           validate:"required"`
	ActivityCompleted bool   `json:"activity_completed"`
	Steps             int    `json:"steps"              validate:"gte=0"`
	MinutesExercised  int    `json:"minutes_exercised"  validate:"gte=0"`
	Intensity         string `json:"intensity"          validate:"required,oneof=LOW MEDIUM HIGH"`
}
