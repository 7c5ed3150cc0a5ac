package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/convocatoria-service/domain/errors"
	"pasantias/contexts/internship-program/convocatoria-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory implementation of the convocatoria ports, used by
// tests and the in-memory module wiring.
type Store struct {
	mu            sync.RWMutex
	convocatorias map[string]entities.Convocatoria
	nextID        int64
	tutors        []entities.Tutor
}

func NewStore(seed []entities.Convocatoria) *Store {
	store := &Store{
		convocatorias: make(map[string]entities.Convocatoria, len(seed)),
		nextID:        1,
	}
	for _, convocatoria := range seed {
		if convocatoria.ID >= store.nextID {
			store.nextID = convocatoria.ID + 1
		}
		store.convocatorias[convocatoria.UUID] = convocatoria
	}
	return store
}

// SetEligibleTutors seeds the tutor directory.
func (s *Store) SetEligibleTutors(tutors []entities.Tutor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tutors = append([]entities.Tutor(nil), tutors...)
}

func (s *Store) SaveConvocatoria(
	_ context.Context,
	convocatoria entities.Convocatoria,
) (entities.Convocatoria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if convocatoria.Active {
		for _, existing := range s.convocatorias {
			if existing.Active && existing.UUID != convocatoria.UUID {
				return entities.Convocatoria{}, domainerrors.ErrConvocatoriaConflict
			}
		}
	}
	if convocatoria.ID == 0 {
		convocatoria.ID = s.nextID
		s.nextID++
	}
	s.convocatorias[convocatoria.UUID] = convocatoria
	return convocatoria, nil
}

func (s *Store) UpdateConvocatoria(
	_ context.Context,
	convocatoria entities.Convocatoria,
) (entities.Convocatoria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.convocatorias[convocatoria.UUID]
	if !ok {
		return entities.Convocatoria{}, domainerrors.ErrConvocatoriaNotFound
	}
	convocatoria.ID = existing.ID
	s.convocatorias[convocatoria.UUID] = convocatoria
	return convocatoria, nil
}

func (s *Store) GetConvocatoria(_ context.Context, convocatoriaUUID string) (entities.Convocatoria, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	convocatoria, ok := s.convocatorias[convocatoriaUUID]
	if !ok {
		return entities.Convocatoria{}, domainerrors.ErrConvocatoriaNotFound
	}
	return convocatoria, nil
}

func (s *Store) GetActive(_ context.Context) (entities.Convocatoria, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := time.Now().UTC()
	for _, convocatoria := range s.convocatorias {
		if convocatoria.Active && !convocatoria.Expired(now) {
			return convocatoria, true, nil
		}
	}
	return entities.Convocatoria{}, false, nil
}

func (s *Store) HasActive(ctx context.Context) (bool, error) {
	_, found, err := s.GetActive(ctx)
	return found, err
}

func (s *Store) List(_ context.Context) ([]entities.Convocatoria, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Convocatoria, 0, len(s.convocatorias))
	for _, convocatoria := range s.convocatorias {
		items = append(items, convocatoria)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for key, convocatoria := range s.convocatorias {
		if convocatoria.Active && convocatoria.Expired(now) {
			convocatoria.Active = false
			convocatoria.UpdatedAt = now.UTC()
			s.convocatorias[key] = convocatoria
			count++
		}
	}
	return count, nil
}

func (s *Store) ListEligibleTutors(_ context.Context) ([]entities.Tutor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Tutor(nil), s.tutors...), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.ConvocatoriaRepository = (*Store)(nil)
var _ ports.TutorDirectory = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
