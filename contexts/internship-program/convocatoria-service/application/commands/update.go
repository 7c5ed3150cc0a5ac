package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "pasantias/contexts/internship-program/convocatoria-service/application"
	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/convocatoria-service/domain/errors"
	"pasantias/contexts/internship-program/convocatoria-service/ports"
)

// UpdateConvocatoriaCommand patches an open call. Nil fields are left as they
// are; Deadline follows the same calendar-date format as creation.
type UpdateConvocatoriaCommand struct {
	ConvocatoriaUUID string
	Name             *string
	Description      *string
	Deadline         *string
}

// UpdateUseCase edits convocatorias that are still open. The type list and
// tutor roster are fixed at creation and cannot be patched.
type UpdateUseCase struct {
	Convocatorias ports.ConvocatoriaRepository
	Clock         ports.Clock
	Logger        *slog.Logger
}

func (uc UpdateUseCase) UpdateConvocatoria(
	ctx context.Context,
	cmd UpdateConvocatoriaCommand,
) (entities.Convocatoria, error) {
	logger := application.ResolveLogger(uc.Logger)

	convocatoriaUUID := strings.TrimSpace(cmd.ConvocatoriaUUID)
	if convocatoriaUUID == "" {
		return entities.Convocatoria{}, domainerrors.ErrInvalidConvocatoriaInput
	}
	if cmd.Name == nil && cmd.Description == nil && cmd.Deadline == nil {
		return entities.Convocatoria{}, domainerrors.ErrInvalidConvocatoriaInput
	}

	convocatoria, err := uc.Convocatorias.GetConvocatoria(ctx, convocatoriaUUID)
	if err != nil {
		return entities.Convocatoria{}, err
	}

	now := uc.now()
	if !convocatoria.Active || convocatoria.Expired(now) {
		return entities.Convocatoria{}, domainerrors.ErrConvocatoriaClosed
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return entities.Convocatoria{}, domainerrors.ErrInvalidConvocatoriaInput
		}
		convocatoria.Name = name
	}
	if cmd.Description != nil {
		convocatoria.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.Deadline != nil {
		deadline, err := parseDeadline(*cmd.Deadline, now)
		if err != nil {
			return entities.Convocatoria{}, err
		}
		convocatoria.Deadline = deadline
	}
	convocatoria.UpdatedAt = now

	updated, err := uc.Convocatorias.UpdateConvocatoria(ctx, convocatoria)
	if err != nil {
		return entities.Convocatoria{}, err
	}

	logger.Info("convocatoria updated",
		"event", "convocatoria_updated",
		"module", "internship-program/convocatoria-service",
		"layer", "application",
		"convocatoria_uuid", updated.UUID,
		"deadline", updated.Deadline.Format(time.RFC3339),
	)
	return updated, nil
}

func (uc UpdateUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
