package queries

import (
	"context"
	"strings"

	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/convocatoria-service/domain/errors"
	"pasantias/contexts/internship-program/convocatoria-service/ports"
)

type ConvocatoriaUseCase struct {
	Convocatorias ports.ConvocatoriaRepository
}

// GetActive returns the currently open call or ErrNoActiveConvocatoria.
func (uc ConvocatoriaUseCase) GetActive(ctx context.Context) (entities.Convocatoria, error) {
	convocatoria, found, err := uc.Convocatorias.GetActive(ctx)
	if err != nil {
		return entities.Convocatoria{}, err
	}
	if !found {
		return entities.Convocatoria{}, domainerrors.ErrNoActiveConvocatoria
	}
	return convocatoria, nil
}

func (uc ConvocatoriaUseCase) HasActive(ctx context.Context) (bool, error) {
	return uc.Convocatorias.HasActive(ctx)
}

func (uc ConvocatoriaUseCase) Get(ctx context.Context, uuid string) (entities.Convocatoria, error) {
	trimmed := strings.TrimSpace(uuid)
	if trimmed == "" {
		return entities.Convocatoria{}, domainerrors.ErrInvalidConvocatoriaInput
	}
	return uc.Convocatorias.GetConvocatoria(ctx, trimmed)
}

func (uc ConvocatoriaUseCase) List(ctx context.Context) ([]entities.Convocatoria, error) {
	return uc.Convocatorias.List(ctx)
}

// ListAvailableTutors exposes the active call's tutor roster, the set students
// pick their internal tutor from.
func (uc ConvocatoriaUseCase) ListAvailableTutors(ctx context.Context) ([]entities.Tutor, error) {
	convocatoria, err := uc.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return convocatoria.AvailableTutors, nil
}
