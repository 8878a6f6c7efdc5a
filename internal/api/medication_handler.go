package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/api/middleware"
	"github.com/manodhithyaa-cs/mindful-companion/internal/api/shared"
	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/service"
)

// MedicationHandler handles medication and medication log API requests.
type MedicationHandler struct {
	medicationService service.MedicationService
}

// NewMedicationHandler creates a new MedicationHandler with the given dependencies.
func NewMedicationHandler(medicationService service.MedicationService) *MedicationHandler {
	return &MedicationHandler{
		medicationService: medicationService,
	}
}

// CreateMedication handles POST /api/medications.
func (h *MedicationHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateMedicationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	med, err := h.medicationService.CreateMedication(
		r.Context(),
		userID,
		req.Name,
		req.Dosage,
		req.FrequencyPerDay,
		req.ReminderTime,
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReminderTime) || errors.Is(err, domain.ErrInvalidFrequency) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid medication data: "+err.Error())
			return
		}
		slog.Error("failed to create medication", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create medication")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, med)
}

// ListMedications handles GET /api/medications.
func (h *MedicationHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	meds, err := h.medicationService.ListMedications(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list medications", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list medications")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, meds)
}

// DeleteMedication handles DELETE /api/medications/{id}. The medication's
// logs are removed with it.
func (h *MedicationHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	medicationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid medication ID")
		return
	}

	if err := h.medicationService.DeleteMedication(r.Context(), userID, medicationID); err != nil {
		switch {
		case errors.Is(err, service.ErrMedicationNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "Medication not found")
		case errors.Is(err, service.ErrNotOwned):
			shared.RespondWithError(w, r, http.StatusForbidden, "Medication belongs to another user")
		default:
			slog.Error("failed to delete medication", "error", err, "medication_id", medicationID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete medication")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LogTaken handles POST /api/medications/{id}/logs.
func (h *MedicationHandler) LogTaken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	medicationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid medication ID")
		return
	}

	var req LogMedicationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	medLog, err := h.medicationService.LogTaken(r.Context(), userID, medicationID, req.TakenDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMedicationNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "Medication not found")
		case errors.Is(err, service.ErrNotOwned):
			shared.RespondWithError(w, r, http.StatusForbidden, "Medication belongs to another user")
		case errors.Is(err, domain.ErrInvalidLogTakenDate):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Taken date must be YYYY-MM-DD")
		default:
			slog.Error("failed to log medication", "error", err, "medication_id", medicationID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to log medication")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, medLog)
}

// ListLogs handles GET /api/medications/logs.
func (h *MedicationHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	logs, err := h.medicationService.ListLogs(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list medication logs", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list medication logs")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, logs)
}
