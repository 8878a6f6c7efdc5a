package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/manodhithyaa-cs/mindful-companion/internal/config"
	"github.com/manodhithyaa-cs/mindful-companion/internal/events"
	"github.com/manodhithyaa-cs/mindful-companion/internal/platform/postgres"
	"github.com/manodhithyaa-cs/mindful-companion/internal/service"
	"github.com/manodhithyaa-cs/mindful-companion/internal/service/auth"
)

// application holds the assembled dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService        auth.JWTService
	userService       service.UserService
	journalService    service.JournalService
	medicationService service.MedicationService
	fitnessService    service.FitnessService
	insightService    service.InsightService
}

// newApplication wires stores, services, and event handlers together.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	journalStore := postgres.NewPostgresJournalStore(db, logger)
	medicationStore := postgres.NewPostgresMedicationStore(db, logger)
	medicationLogStore := postgres.NewPostgresMedicationLogStore(db, logger)
	fitnessStore := postgres.NewPostgresFitnessLogStore(db, logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(service.NewRiskNotifier(logger))

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		jwtService:  jwtService,
		userService: service.NewUserService(userStore, auth.NewBcryptVerifier(), db, logger),
		journalService: service.NewJournalService(
			journalStore,
			emitter,
			db,
			logger,
		),
		medicationService: service.NewMedicationService(
			medicationStore,
			medicationLogStore,
			db,
			logger,
		),
		fitnessService: service.NewFitnessService(fitnessStore, logger),
		insightService: service.NewInsightService(
			journalStore,
			fitnessStore,
			medicationLogStore,
			medicationStore,
			clockwork.NewRealClock(),
			logger,
		),
	}, nil
}

// setupDatabase establishes a connection to the database and configures
// the connection pool.
func setupDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")
	return db, nil
}

// cleanup releases held resources during shutdown.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
	}
}
