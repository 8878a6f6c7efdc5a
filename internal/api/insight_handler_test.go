package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manodhithyaa-cs/mindful-companion/internal/api"
	"github.com/manodhithyaa-cs/mindful-companion/internal/domain/insight"
)

func TestInsightHandlerWeeklyInsight(t *testing.T) {
	t.Parallel()

	t.Run("successful response", func(t *testing.T) {
		t.Parallel()
		want := insight.WeeklyInsight{
			AvgMood: 0.42,
			Summary: "Your mood has been positive this week. Keep it up!",
			MoodTrend: []insight.TrendPoint{
				{Day: "Mon", Score: 0.5},
			},
		}
		handler := api.NewInsightHandler(&fakeInsightService{result: want})

		req := httptest.NewRequest(http.MethodGet, "/api/insights/weekly", nil)
		req = authenticatedRequest(req, uuid.New())

		w := execute(handler.WeeklyInsight, req)
		require.Equal(t, http.StatusOK, w.Code)

		var got insight.WeeklyInsight
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, want, got)
	})

	t.Run("service failure", func(t *testing.T) {
		t.Parallel()
		handler := api.NewInsightHandler(&fakeInsightService{err: errors.New("db down")})

		req := httptest.NewRequest(http.MethodGet, "/api/insights/weekly", nil)
		req = authenticatedRequest(req, uuid.New())

		w := execute(handler.WeeklyInsight, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()
		handler := api.NewInsightHandler(&fakeInsightService{})

		req := httptest.NewRequest(http.MethodGet, "/api/insights/weekly", nil)
		w := execute(handler.WeeklyInsight, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
