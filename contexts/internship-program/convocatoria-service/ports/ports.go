package ports

import (
	"context"
	"time"

	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
)

type ConvocatoriaRepository interface {
	SaveConvocatoria(ctx context.Context, convocatoria entities.Convocatoria) (entities.Convocatoria, error)
	UpdateConvocatoria(ctx context.Context, convocatoria entities.Convocatoria) (entities.Convocatoria, error)
	GetConvocatoria(ctx context.Context, uuid string) (entities.Convocatoria, error)
	GetActive(ctx context.Context) (entities.Convocatoria, bool, error)
	HasActive(ctx context.Context) (bool, error)
	List(ctx context.Context) ([]entities.Convocatoria, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// TutorDirectory resolves which professors may be offered as internal tutors.
// The roster is snapshotted onto the convocatoria at creation time.
type TutorDirectory interface {
	ListEligibleTutors(ctx context.Context) ([]entities.Tutor, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
