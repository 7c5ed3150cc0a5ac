package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "pasantias/contexts/internship-program/convocatoria-service/application"
	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/convocatoria-service/domain/errors"
	"pasantias/contexts/internship-program/convocatoria-service/ports"
)

// CreateConvocatoriaCommand carries the admin input for opening a call.
// Deadline is a calendar date; the call stays open through the end of that
// day in UTC.
type CreateConvocatoriaCommand struct {
	Name            string
	Description     string
	Deadline        string
	InternshipTypes []string
	TutorIDs        []int64
}

// CreateUseCase opens convocatorias. At most one call may be active at a
// time; the check here is advisory and the repository's unique constraint is
// authoritative under concurrency.
type CreateUseCase struct {
	Convocatorias ports.ConvocatoriaRepository
	Tutors        ports.TutorDirectory
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func (uc CreateUseCase) CreateConvocatoria(
	ctx context.Context,
	cmd CreateConvocatoriaCommand,
) (entities.Convocatoria, error) {
	logger := application.ResolveLogger(uc.Logger)
	logger.Info("convocatoria creation started",
		"event", "convocatoria_create_started",
		"module", "internship-program/convocatoria-service",
		"layer", "application",
		"name", strings.TrimSpace(cmd.Name),
	)

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Convocatoria{}, domainerrors.ErrInvalidConvocatoriaInput
	}

	now := uc.now()
	deadline, err := parseDeadline(cmd.Deadline, now)
	if err != nil {
		return entities.Convocatoria{}, err
	}

	types := entities.NormalizeInternshipTypes(cmd.InternshipTypes)
	if len(types) == 0 {
		return entities.Convocatoria{}, domainerrors.ErrNoInternshipTypes
	}
	if len(types) > entities.MaxInternshipTypes {
		return entities.Convocatoria{}, domainerrors.ErrTooManyInternshipTypes
	}
	for _, t := range types {
		if !entities.ValidInternshipType(t) {
			logger.Warn("convocatoria creation rejected",
				"event", "convocatoria_create_rejected",
				"module", "internship-program/convocatoria-service",
				"layer", "application",
				"reason", "unknown_internship_type",
				"internship_type", t,
			)
			return entities.Convocatoria{}, domainerrors.ErrInvalidInternshipType
		}
	}

	tutors, err := uc.resolveTutors(ctx, cmd.TutorIDs)
	if err != nil {
		return entities.Convocatoria{}, err
	}

	// An expired call can still hold the active flag between sweeps; retire it
	// here so it neither trips the advisory check nor the unique index below.
	if _, err := uc.Convocatorias.DeactivateExpired(ctx, now); err != nil {
		return entities.Convocatoria{}, err
	}

	hasActive, err := uc.Convocatorias.HasActive(ctx)
	if err != nil {
		return entities.Convocatoria{}, err
	}
	if hasActive {
		return entities.Convocatoria{}, domainerrors.ErrActiveConvocatoriaExists
	}

	uuid, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Convocatoria{}, err
	}

	convocatoria := entities.Convocatoria{
		UUID:            uuid,
		Name:            name,
		Description:     strings.TrimSpace(cmd.Description),
		Deadline:        deadline,
		InternshipTypes: types,
		AvailableTutors: tutors,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	saved, err := uc.Convocatorias.SaveConvocatoria(ctx, convocatoria)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConvocatoriaConflict) {
			// Lost the race against a concurrent create.
			return entities.Convocatoria{}, domainerrors.ErrActiveConvocatoriaExists
		}
		return entities.Convocatoria{}, err
	}

	logger.Info("convocatoria created",
		"event", "convocatoria_created",
		"module", "internship-program/convocatoria-service",
		"layer", "application",
		"convocatoria_uuid", saved.UUID,
		"deadline", saved.Deadline.Format(time.RFC3339),
		"internship_types", len(saved.InternshipTypes),
		"tutors", len(saved.AvailableTutors),
	)
	return saved, nil
}

func parseDeadline(raw string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, domainerrors.ErrInvalidDeadline
	}
	day, err := time.ParseInLocation(entities.DateLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidDeadline
	}
	if day.Before(entities.EarliestDeadline(now)) {
		return time.Time{}, domainerrors.ErrDeadlineTooSoon
	}
	return entities.EndOfDayUTC(day), nil
}

func (uc CreateUseCase) resolveTutors(ctx context.Context, tutorIDs []int64) ([]entities.Tutor, error) {
	if len(tutorIDs) == 0 {
		return nil, domainerrors.ErrNoTutors
	}
	eligible, err := uc.Tutors.ListEligibleTutors(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]entities.Tutor, len(eligible))
	for _, tutor := range eligible {
		byID[tutor.ID] = tutor
	}
	seen := make(map[int64]struct{}, len(tutorIDs))
	roster := make([]entities.Tutor, 0, len(tutorIDs))
	for _, id := range tutorIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		tutor, ok := byID[id]
		if !ok {
			return nil, domainerrors.ErrUnknownTutor
		}
		roster = append(roster, tutor)
	}
	return roster, nil
}

func (uc CreateUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
