package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/manodhithyaa-cs/mindful-companion/internal/events"
)

// RiskNotifier handles risk-flagged journal events. It records the event
// at warn level so operators can follow up; delivery of in-app support
// resources happens client-side based on the entry's risk flag.
type RiskNotifier struct {
	logger *slog.Logger
}

// NewRiskNotifier creates a new RiskNotifier.
func NewRiskNotifier(logger *slog.Logger) *RiskNotifier {
	return &RiskNotifier{
		logger: logger.With("component", "risk_notifier"),
	}
}

// Ensure RiskNotifier implements events.EventHandler interface
var _ events.EventHandler = (*RiskNotifier)(nil)

// HandleEvent implements events.EventHandler.
func (n *RiskNotifier) HandleEvent(_ context.Context, event *events.Event) error {
	if event.Type != events.EventTypeRiskFlagged {
		return nil
	}

	var payload events.RiskFlaggedPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("failed to decode risk event payload: %w", err)
	}

	n.logger.Warn("journal entry flagged for risk",
		"event_id", event.ID,
		"entry_id", payload.EntryID,
		"user_id", payload.UserID)

	return nil
}
