package workers

import (
	"context"
	"testing"
	"time"

	"pasantias/contexts/internship-program/convocatoria-service/adapters/memory"
	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestExpirationSweeperDeactivatesExpiredCalls(t *testing.T) {
	now := time.Date(2026, time.March, 12, 8, 0, 0, 0, time.UTC)
	store := memory.NewStore([]entities.Convocatoria{
		{
			ID:       1,
			UUID:     "conv-expired",
			Name:     "Convocatoria Invierno 2026",
			Deadline: time.Date(2026, time.March, 11, 23, 59, 59, 0, time.UTC),
			Active:   true,
		},
		{
			ID:       2,
			UUID:     "conv-closed",
			Name:     "Convocatoria Otoño 2025",
			Deadline: time.Date(2025, time.November, 30, 23, 59, 59, 0, time.UTC),
			Active:   false,
		},
	})
	sweeper := ExpirationSweeper{Convocatorias: store, Clock: fixedClock{now: now}}
	ctx := context.Background()

	if err := sweeper.RunOnce(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	swept, err := store.GetConvocatoria(ctx, "conv-expired")
	if err != nil {
		t.Fatalf("load convocatoria: %v", err)
	}
	if swept.Active {
		t.Fatalf("expected expired convocatoria to be deactivated")
	}

	count, err := store.DeactivateExpired(ctx, now)
	if err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected idempotent sweep, deactivated %d", count)
	}
}

func TestExpirationSweeperLeavesOpenCallsAlone(t *testing.T) {
	now := time.Date(2026, time.March, 12, 8, 0, 0, 0, time.UTC)
	store := memory.NewStore([]entities.Convocatoria{
		{
			ID:       1,
			UUID:     "conv-open",
			Name:     "Convocatoria Primavera 2026",
			Deadline: time.Date(2026, time.March, 12, 23, 59, 59, 0, time.UTC),
			Active:   true,
		},
	})
	sweeper := ExpirationSweeper{Convocatorias: store, Clock: fixedClock{now: now}}
	ctx := context.Background()

	if err := sweeper.RunOnce(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	open, err := store.GetConvocatoria(ctx, "conv-open")
	if err != nil {
		t.Fatalf("load convocatoria: %v", err)
	}
	if !open.Active {
		t.Fatalf("expected open convocatoria to stay active through its deadline day")
	}
}
