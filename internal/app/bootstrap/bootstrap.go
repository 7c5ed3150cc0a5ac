package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	convocatoriaservice "pasantias/contexts/internship-program/convocatoria-service"
	convocatoriapostgres "pasantias/contexts/internship-program/convocatoria-service/adapters/postgres"
	convocatoriaworkers "pasantias/contexts/internship-program/convocatoria-service/application/workers"
	evaluationengine "pasantias/contexts/internship-program/evaluation-engine"
	evaluationpostgres "pasantias/contexts/internship-program/evaluation-engine/adapters/postgres"
	proposalservice "pasantias/contexts/internship-program/proposal-service"
	proposalpostgres "pasantias/contexts/internship-program/proposal-service/adapters/postgres"
	"pasantias/internal/platform/config"
	"pasantias/internal/platform/db"
	"pasantias/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres      *db.Postgres
	sweeper       convocatoriaworkers.ExpirationSweeper
	sweepInterval time.Duration
	logger        *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	convocatoriaRepo := convocatoriapostgres.NewRepository(pg.DB, logger)
	convocatoriaModule := convocatoriaservice.NewModule(convocatoriaservice.Dependencies{
		Convocatorias: convocatoriaRepo,
		Tutors:        convocatoriaRepo,
		Clock:         convocatoriapostgres.SystemClock{},
		IDGen:         convocatoriapostgres.UUIDGenerator{},
		Logger:        logger,
	})

	proposalRepo := proposalpostgres.NewRepository(pg.DB, logger)
	proposalModule := proposalservice.NewModule(proposalservice.Dependencies{
		Proposals:     proposalRepo,
		Convocatorias: proposalRepo,
		Clock:         proposalpostgres.SystemClock{},
		IDGen:         proposalpostgres.UUIDGenerator{},
		Logger:        logger,
	})

	evaluationRepo := evaluationpostgres.NewRepository(pg.DB, logger)
	evaluationModule := evaluationengine.NewModule(evaluationengine.Dependencies{
		Comments:      evaluationRepo,
		Proposals:     evaluationRepo,
		Convocatorias: evaluationRepo,
		Clock:         evaluationpostgres.SystemClock{},
		IDGen:         evaluationpostgres.UUIDGenerator{},
		Logger:        logger,
	})

	server := httpserver.New(
		convocatoriaModule,
		proposalModule,
		evaluationModule,
		cfg.JWTSecret,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := convocatoriapostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		sweeper: convocatoriaworkers.ExpirationSweeper{
			Convocatorias: repo,
			Clock:         convocatoriapostgres.SystemClock{},
			Logger:        logger,
		},
		sweepInterval: cfg.SweepInterval,
		logger:        logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// Run loops the expiration sweep until the context is cancelled. A failed
// sweep is logged and retried on the next tick; it never stops the worker.
func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"sweep_interval", w.sweepInterval.String(),
	)

	for {
		_ = w.sweeper.RunOnce(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
