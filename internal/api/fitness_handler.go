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

// FitnessHandler handles fitness log API requests.
type FitnessHandler struct {
	fitnessService service.FitnessService
}

// NewFitnessHandler creates a new FitnessHandler with the given dependencies.
func NewFitnessHandler(fitnessService service.FitnessService) *FitnessHandler {
	return &FitnessHandler{
		fitnessService: fitnessService,
	}
}

// CreateLog handles POST /api/fitness.
func (h *FitnessHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateFitnessLogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	fitLog, err := h.fitnessService.CreateLog(
		r.Context(),
		userID,
		req.LogDate,
		req.ActivityCompleted,
		req.Steps,
		req.MinutesExercised,
		domain.Intensity(req.Intensity),
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFitnessLogDate) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Log date must be YYYY-MM-DD")
			return
		}
		slog.Error("failed to create fitness log", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create fitness log")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, fitLog)
}

// ListLogs handles GET /api/fitness.
func (h *FitnessHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	logs, err := h.fitnessService.ListLogs(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list fitness logs", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list fitness logs")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, logs)
}
