package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/manodhithyaa-cs/mindful-companion/internal/api/middleware"
	"github.com/manodhithyaa-cs/mindful-companion/internal/api/shared"
	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/service"
)

// JournalHandler handles journal entry API requests.
type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new JournalHandler with the given dependencies.
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// CreateEntry handles POST /api/journal. The entry is classified on the
// server; the response carries the derived sentiment fields.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateJournalEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.journalService.CreateEntry(r.Context(), userID, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyJournalContent) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Journal content cannot be empty")
			return
		}
		slog.Error("failed to create journal entry", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create journal entry")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}

// ListEntries handles GET /api/journal, newest first.
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	entries, err := h.journalService.ListEntries(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list journal entries", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list journal entries")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}
