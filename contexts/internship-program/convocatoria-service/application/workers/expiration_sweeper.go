package workers

import (
	"context"
	"log/slog"
	"time"

	application "pasantias/contexts/internship-program/convocatoria-service/application"
	"pasantias/contexts/internship-program/convocatoria-service/ports"
)

// ExpirationSweeper deactivates convocatorias whose deadline has passed. The
// conditional update makes the sweep idempotent, so overlapping runs are
// harmless.
type ExpirationSweeper struct {
	Convocatorias ports.ConvocatoriaRepository
	Clock         ports.Clock
	Logger        *slog.Logger
}

func (j ExpirationSweeper) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	now := time.Now().UTC()
	if j.Clock != nil {
		now = j.Clock.Now().UTC()
	}

	count, err := j.Convocatorias.DeactivateExpired(ctx, now)
	if err != nil {
		logger.Error("convocatoria expiration sweep failed",
			"event", "convocatoria_expiration_sweep_failed",
			"module", "internship-program/convocatoria-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if count > 0 {
		logger.Info("convocatoria expiration sweep completed",
			"event", "convocatoria_expiration_sweep_completed",
			"module", "internship-program/convocatoria-service",
			"layer", "worker",
			"deactivated_count", count,
		)
	}
	return nil
}
