package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"pasantias/contexts/internship-program/convocatoria-service/adapters/memory"
	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/convocatoria-service/domain/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// conflictRepo simulates losing the single-active race: the advisory check
// sees no active call, yet the insert hits the unique constraint.
type conflictRepo struct{ *memory.Store }

func (conflictRepo) HasActive(context.Context) (bool, error) { return false, nil }

func (conflictRepo) SaveConvocatoria(context.Context, entities.Convocatoria) (entities.Convocatoria, error) {
	return entities.Convocatoria{}, domainerrors.ErrConvocatoriaConflict
}

func newCreateFixture() (CreateUseCase, *memory.Store, time.Time) {
	store := memory.NewStore(nil)
	store.SetEligibleTutors([]entities.Tutor{
		{ID: 1, Name: "Laura Medina", Email: "lmedina@uni.edu"},
		{ID: 2, Name: "Jorge Paredes", Email: "jparedes@uni.edu"},
	})
	now := time.Now().UTC()
	uc := CreateUseCase{
		Convocatorias: store,
		Tutors:        store,
		Clock:         fixedClock{now: now},
		IDGen:         store,
	}
	return uc, store, now
}

func deadlineIn(now time.Time, days int) string {
	return now.AddDate(0, 0, days).Format(entities.DateLayout)
}

func TestCreateConvocatoria(t *testing.T) {
	uc, _, now := newCreateFixture()
	deadline := deadlineIn(now, 1)

	created, err := uc.CreateConvocatoria(context.Background(), CreateConvocatoriaCommand{
		Name:            "  Convocatoria Primavera 2026  ",
		Description:     "Estancias y estadías del periodo primavera.",
		Deadline:        deadline,
		InternshipTypes: []string{" Estadía ", "Estadía", entities.TypeEstancia1},
		TutorIDs:        []int64{1, 2, 1},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Name != "Convocatoria Primavera 2026" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if !created.Active {
		t.Fatalf("expected new convocatoria to be active")
	}
	day, err := time.ParseInLocation(entities.DateLayout, deadline, time.UTC)
	if err != nil {
		t.Fatalf("parse deadline: %v", err)
	}
	if want := entities.EndOfDayUTC(day); !created.Deadline.Equal(want) {
		t.Fatalf("expected end-of-day deadline %v, got %v", want, created.Deadline)
	}
	if len(created.InternshipTypes) != 2 {
		t.Fatalf("expected deduped types, got %v", created.InternshipTypes)
	}
	if len(created.AvailableTutors) != 2 {
		t.Fatalf("expected deduped roster, got %v", created.AvailableTutors)
	}
}

func TestCreateConvocatoriaRejectsSecondActive(t *testing.T) {
	uc, _, now := newCreateFixture()
	ctx := context.Background()

	cmd := CreateConvocatoriaCommand{
		Name:            "Convocatoria Primavera 2026",
		Deadline:        deadlineIn(now, 10),
		InternshipTypes: []string{entities.TypeEstadia},
		TutorIDs:        []int64{1},
	}
	if _, err := uc.CreateConvocatoria(ctx, cmd); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := uc.CreateConvocatoria(ctx, cmd); !errors.Is(err, domainerrors.ErrActiveConvocatoriaExists) {
		t.Fatalf("expected ErrActiveConvocatoriaExists, got %v", err)
	}
}

func TestCreateConvocatoriaReplacesExpiredActiveCall(t *testing.T) {
	uc, store, now := newCreateFixture()
	ctx := context.Background()

	// The sweep has not run yet, so the expired call still holds its flag.
	if _, err := store.SaveConvocatoria(ctx, entities.Convocatoria{
		UUID:     "conv-expired",
		Name:     "Convocatoria Invierno 2026",
		Deadline: now.Add(-48 * time.Hour),
		Active:   true,
	}); err != nil {
		t.Fatalf("seed expired call: %v", err)
	}

	created, err := uc.CreateConvocatoria(ctx, CreateConvocatoriaCommand{
		Name:            "Convocatoria Primavera 2026",
		Deadline:        deadlineIn(now, 10),
		InternshipTypes: []string{entities.TypeEstadia},
		TutorIDs:        []int64{1},
	})
	if err != nil {
		t.Fatalf("create after expired call failed: %v", err)
	}
	if !created.Active {
		t.Fatalf("expected replacement call to be active")
	}

	old, err := store.GetConvocatoria(ctx, "conv-expired")
	if err != nil {
		t.Fatalf("load expired call: %v", err)
	}
	if old.Active {
		t.Fatalf("expected expired call to be retired by the create")
	}
}

func TestCreateConvocatoriaMapsSaveConflict(t *testing.T) {
	uc, store, now := newCreateFixture()
	uc.Convocatorias = conflictRepo{Store: store}

	_, err := uc.CreateConvocatoria(context.Background(), CreateConvocatoriaCommand{
		Name:            "Convocatoria Primavera 2026",
		Deadline:        deadlineIn(now, 10),
		InternshipTypes: []string{entities.TypeEstadia},
		TutorIDs:        []int64{1},
	})
	if !errors.Is(err, domainerrors.ErrActiveConvocatoriaExists) {
		t.Fatalf("expected conflict to surface as ErrActiveConvocatoriaExists, got %v", err)
	}
}

func TestCreateConvocatoriaDeadlineValidation(t *testing.T) {
	uc, _, now := newCreateFixture()
	ctx := context.Background()

	base := CreateConvocatoriaCommand{
		Name:            "Convocatoria Primavera 2026",
		InternshipTypes: []string{entities.TypeEstadia},
		TutorIDs:        []int64{1},
	}

	cases := []struct {
		name     string
		deadline string
		want     error
	}{
		{name: "empty", deadline: "", want: domainerrors.ErrInvalidDeadline},
		{name: "malformed", deadline: "11/03/2026", want: domainerrors.ErrInvalidDeadline},
		{name: "today", deadline: deadlineIn(now, 0), want: domainerrors.ErrDeadlineTooSoon},
		{name: "past", deadline: deadlineIn(now, -30), want: domainerrors.ErrDeadlineTooSoon},
	}
	for _, tc := range cases {
		cmd := base
		cmd.Deadline = tc.deadline
		if _, err := uc.CreateConvocatoria(ctx, cmd); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestCreateConvocatoriaTypeValidation(t *testing.T) {
	uc, _, now := newCreateFixture()
	ctx := context.Background()

	base := CreateConvocatoriaCommand{
		Name:     "Convocatoria Primavera 2026",
		Deadline: deadlineIn(now, 10),
		TutorIDs: []int64{1},
	}

	empty := base
	empty.InternshipTypes = []string{"  ", ""}
	if _, err := uc.CreateConvocatoria(ctx, empty); !errors.Is(err, domainerrors.ErrNoInternshipTypes) {
		t.Fatalf("expected ErrNoInternshipTypes, got %v", err)
	}

	tooMany := base
	tooMany.InternshipTypes = []string{
		entities.TypeEstancia1, entities.TypeEstancia2, entities.TypeEstadia,
		entities.TypeEstadia1, entities.TypeEstadia2, "Residencia",
	}
	if _, err := uc.CreateConvocatoria(ctx, tooMany); !errors.Is(err, domainerrors.ErrTooManyInternshipTypes) {
		t.Fatalf("expected ErrTooManyInternshipTypes, got %v", err)
	}

	unknown := base
	unknown.InternshipTypes = []string{"Residencia profesional"}
	if _, err := uc.CreateConvocatoria(ctx, unknown); !errors.Is(err, domainerrors.ErrInvalidInternshipType) {
		t.Fatalf("expected ErrInvalidInternshipType, got %v", err)
	}
}

func TestCreateConvocatoriaTutorValidation(t *testing.T) {
	uc, _, now := newCreateFixture()
	ctx := context.Background()

	base := CreateConvocatoriaCommand{
		Name:            "Convocatoria Primavera 2026",
		Deadline:        deadlineIn(now, 10),
		InternshipTypes: []string{entities.TypeEstadia},
	}

	none := base
	if _, err := uc.CreateConvocatoria(ctx, none); !errors.Is(err, domainerrors.ErrNoTutors) {
		t.Fatalf("expected ErrNoTutors, got %v", err)
	}

	unknown := base
	unknown.TutorIDs = []int64{1, 99}
	if _, err := uc.CreateConvocatoria(ctx, unknown); !errors.Is(err, domainerrors.ErrUnknownTutor) {
		t.Fatalf("expected ErrUnknownTutor, got %v", err)
	}
}
