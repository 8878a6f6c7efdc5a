package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/manodhithyaa-cs/mindful-companion/internal/api"
	apimiddleware "github.com/manodhithyaa-cs/mindful-companion/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	journalHandler := api.NewJournalHandler(app.journalService)
	medicationHandler := api.NewMedicationHandler(app.medicationService)
	fitnessHandler := api.NewFitnessHandler(app.fitnessService)
	insightHandler := api.NewInsightHandler(app.insightService)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Journal endpoints
			r.Post("/journal", journalHandler.CreateEntry)
			r.Get("/journal", journalHandler.ListEntries)

			// Medication endpoints
			r.Post("/medications", medicationHandler.CreateMedication)
			r.Get("/medications", medicationHandler.ListMedications)
			r.Delete("/medications/{id}", medicationHandler.DeleteMedication)
			r.Post("/medications/{id}/logs", medicationHandler.LogTaken)
			r.Get("/medications/logs", medicationHandler.ListLogs)

			// Fitness endpoints
			r.Post("/fitness", fitnessHandler.CreateLog)
			r.Get("/fitness", fitnessHandler.ListLogs)

			// Insight endpoints
			r.Get("/insights/weekly", insightHandler.WeeklyInsight)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
