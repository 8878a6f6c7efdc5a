package api

import (
	"log/slog"
	"net/http"

	"github.com/manodhithyaa-cs/mindful-companion/internal/api/middleware"
	"github.com/manodhithyaa-cs/mindful-companion/internal/api/shared"
	"github.com/manodhithyaa-cs/mindful-companion/internal/service"
)

// InsightHandler handles weekly insight API requests.
type InsightHandler struct {
	insightService service.InsightService
}

// NewInsightHandler creates a new InsightHandler with the given dependencies.
func NewInsightHandler(insightService service.InsightService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// WeeklyInsight handles GET /api/insights/weekly. The insight is computed
// fresh on every request.
func (h *InsightHandler) WeeklyInsight(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	result, err := h.insightService.WeeklyInsight(r.Context(), userID)
	if err != nil {
		slog.Error("failed to compute weekly insight", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to compute weekly insight")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
