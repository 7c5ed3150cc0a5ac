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

func newUpdateFixture(t *testing.T) (UpdateUseCase, *memory.Store, entities.Convocatoria, time.Time) {
	t.Helper()
	now := time.Now().UTC()
	store := memory.NewStore(nil)
	seeded, err := store.SaveConvocatoria(context.Background(), entities.Convocatoria{
		UUID:            "conv-open",
		Name:            "Convocatoria Primavera 2026",
		Description:     "Periodo primavera.",
		Deadline:        now.AddDate(0, 0, 15),
		InternshipTypes: []string{entities.TypeEstadia},
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		t.Fatalf("seed convocatoria: %v", err)
	}
	uc := UpdateUseCase{
		Convocatorias: store,
		Clock:         fixedClock{now: now},
	}
	return uc, store, seeded, now
}

func strPtr(s string) *string { return &s }

func TestUpdateConvocatoria(t *testing.T) {
	uc, store, seeded, now := newUpdateFixture(t)
	ctx := context.Background()
	deadline := deadlineIn(now, 30)

	updated, err := uc.UpdateConvocatoria(ctx, UpdateConvocatoriaCommand{
		ConvocatoriaUUID: seeded.UUID,
		Name:             strPtr("  Convocatoria Primavera 2026 (extendida)  "),
		Deadline:         strPtr(deadline),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Convocatoria Primavera 2026 (extendida)" {
		t.Fatalf("expected trimmed name, got %q", updated.Name)
	}
	if updated.Description != seeded.Description {
		t.Fatalf("expected untouched description, got %q", updated.Description)
	}
	day, err := time.ParseInLocation(entities.DateLayout, deadline, time.UTC)
	if err != nil {
		t.Fatalf("parse deadline: %v", err)
	}
	if want := entities.EndOfDayUTC(day); !updated.Deadline.Equal(want) {
		t.Fatalf("expected end-of-day deadline %v, got %v", want, updated.Deadline)
	}

	stored, err := store.GetConvocatoria(ctx, seeded.UUID)
	if err != nil {
		t.Fatalf("reload convocatoria: %v", err)
	}
	if stored.Name != updated.Name || !stored.Deadline.Equal(updated.Deadline) {
		t.Fatalf("expected persisted patch, got %+v", stored)
	}
}

func TestUpdateConvocatoriaValidation(t *testing.T) {
	uc, _, seeded, now := newUpdateFixture(t)
	ctx := context.Background()

	cases := map[string]struct {
		cmd     UpdateConvocatoriaCommand
		wantErr error
	}{
		"blank uuid": {
			cmd:     UpdateConvocatoriaCommand{Name: strPtr("Nueva")},
			wantErr: domainerrors.ErrInvalidConvocatoriaInput,
		},
		"empty patch": {
			cmd:     UpdateConvocatoriaCommand{ConvocatoriaUUID: seeded.UUID},
			wantErr: domainerrors.ErrInvalidConvocatoriaInput,
		},
		"blank name": {
			cmd:     UpdateConvocatoriaCommand{ConvocatoriaUUID: seeded.UUID, Name: strPtr("   ")},
			wantErr: domainerrors.ErrInvalidConvocatoriaInput,
		},
		"unknown uuid": {
			cmd:     UpdateConvocatoriaCommand{ConvocatoriaUUID: "conv-missing", Name: strPtr("Nueva")},
			wantErr: domainerrors.ErrConvocatoriaNotFound,
		},
		"malformed deadline": {
			cmd:     UpdateConvocatoriaCommand{ConvocatoriaUUID: seeded.UUID, Deadline: strPtr("15/03/2026")},
			wantErr: domainerrors.ErrInvalidDeadline,
		},
		"deadline today": {
			cmd:     UpdateConvocatoriaCommand{ConvocatoriaUUID: seeded.UUID, Deadline: strPtr(deadlineIn(now, 0))},
			wantErr: domainerrors.ErrDeadlineTooSoon,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := uc.UpdateConvocatoria(ctx, tc.cmd); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUpdateConvocatoriaRejectsClosedCall(t *testing.T) {
	uc, store, seeded, now := newUpdateFixture(t)
	ctx := context.Background()

	if _, err := store.DeactivateExpired(ctx, now.AddDate(0, 0, 30)); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := uc.UpdateConvocatoria(ctx, UpdateConvocatoriaCommand{
		ConvocatoriaUUID: seeded.UUID,
		Name:             strPtr("Nueva"),
	}); !errors.Is(err, domainerrors.ErrConvocatoriaClosed) {
		t.Fatalf("expected ErrConvocatoriaClosed for a retired call, got %v", err)
	}
}
