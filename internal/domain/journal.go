package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for JournalEntry
var (
	ErrEmptyJournalID      = errors.New("journal entry ID cannot be empty")
	ErrEmptyJournalUserID  = errors.New("journal entry user ID cannot be empty")
	ErrEmptyJournalContent = errors.New("journal entry content cannot be empty")
	ErrScoreOutOfRange     = errors.New("sentiment score must be between -1 and 1")
	ErrEmptyEmotionLabel   = errors.New("emotion label cannot be empty")
)

// JournalEntry represents a free-text entry submitted by a user together
// with the classification computed at submission time. Entries are
// immutable once created; corrections are new entries, never edits.
type JournalEntry struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Content        string    `json:"content"`
	SentimentScore float64   `json:"sentiment_score"`
	EmotionLabel   string    `json:"emotion_label"`
	RiskFlag       bool      `json:"risk_flag"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewJournalEntry creates a new JournalEntry for the given user with the
// classification results embedded. It generates a new UUID and sets the
// creation timestamp. Returns an error if validation fails.
func NewJournalEntry(
	userID uuid.UUID,
	content string,
	sentimentScore float64,
	emotionLabel string,
	riskFlag bool,
) (*JournalEntry, error) {
	entry := &JournalEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Content:        content,
		SentimentScore: sentimentScore,
		EmotionLabel:   emotionLabel,
		RiskFlag:       riskFlag,
		CreatedAt:      time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the JournalEntry has valid data.
// Returns an error if any field fails validation.
func (e *JournalEntry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEmptyJournalID
	}

	if e.UserID == uuid.Nil {
		return ErrEmptyJournalUserID
	}

	if e.Content == "" {
		return ErrEmptyJournalContent
	}

	if e.SentimentScore < -1 || e.SentimentScore > 1 {
		return ErrScoreOutOfRange
	}

	if e.EmotionLabel == "" {
		return ErrEmptyEmotionLabel
	}

	return nil
}
