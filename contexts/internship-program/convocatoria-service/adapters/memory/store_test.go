package memory

import (
	"context"
	"testing"
	"time"

	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
)

func TestGetActiveSkipsExpiredCalls(t *testing.T) {
	now := time.Now().UTC()
	store := NewStore([]entities.Convocatoria{
		{
			ID:       1,
			UUID:     "conv-expired",
			Name:     "Convocatoria Invierno 2026",
			Deadline: now.Add(-48 * time.Hour),
			Active:   true,
		},
	})
	ctx := context.Background()

	if _, found, err := store.GetActive(ctx); err != nil {
		t.Fatalf("get active: %v", err)
	} else if found {
		t.Fatalf("expected no active call once the deadline passed")
	}
	if has, err := store.HasActive(ctx); err != nil {
		t.Fatalf("has active: %v", err)
	} else if has {
		t.Fatalf("expected HasActive to ignore the expired call")
	}

	if _, err := store.DeactivateExpired(ctx, now); err != nil {
		t.Fatalf("deactivate expired: %v", err)
	}
	if _, err := store.SaveConvocatoria(ctx, entities.Convocatoria{
		UUID:     "conv-open",
		Name:     "Convocatoria Primavera 2026",
		Deadline: now.Add(72 * time.Hour),
		Active:   true,
	}); err != nil {
		t.Fatalf("save open call: %v", err)
	}

	got, found, err := store.GetActive(ctx)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if !found || got.UUID != "conv-open" {
		t.Fatalf("expected the open call, got found=%v uuid=%q", found, got.UUID)
	}
}
