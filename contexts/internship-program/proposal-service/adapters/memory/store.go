package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pasantias/contexts/internship-program/proposal-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/proposal-service/domain/errors"
	"pasantias/contexts/internship-program/proposal-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory implementation of the proposal ports, used by tests
// and the in-memory module wiring.
type Store struct {
	mu        sync.RWMutex
	proposals map[string]entities.Proposal
	nextID    int64
	active    *ports.ConvocatoriaProjection
}

func NewStore(seed []entities.Proposal) *Store {
	store := &Store{
		proposals: make(map[string]entities.Proposal, len(seed)),
		nextID:    1,
	}
	for _, proposal := range seed {
		if proposal.ID >= store.nextID {
			store.nextID = proposal.ID + 1
		}
		store.proposals[proposal.UUID] = proposal
	}
	return store
}

// SetActiveConvocatoria seeds the active call projection.
func (s *Store) SetActiveConvocatoria(projection ports.ConvocatoriaProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = &projection
}

// ClearActiveConvocatoria removes the active call.
func (s *Store) ClearActiveConvocatoria() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

func (s *Store) SaveProposal(_ context.Context, proposal entities.Proposal) (entities.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if proposal.ID == 0 {
		proposal.ID = s.nextID
		s.nextID++
	}
	s.proposals[proposal.UUID] = proposal
	return proposal, nil
}

func (s *Store) UpdateProposal(_ context.Context, proposal entities.Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.proposals[proposal.UUID]; !ok {
		return domainerrors.ErrProposalNotFound
	}
	s.proposals[proposal.UUID] = proposal
	return nil
}

func (s *Store) UpdateStatus(_ context.Context, proposalID int64, status entities.ProposalStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, proposal := range s.proposals {
		if proposal.ID == proposalID {
			proposal.Status = status
			proposal.UpdatedAt = time.Now().UTC()
			s.proposals[key] = proposal
			return nil
		}
	}
	return domainerrors.ErrProposalNotFound
}

func (s *Store) GetProposal(_ context.Context, proposalUUID string) (entities.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	proposal, ok := s.proposals[proposalUUID]
	if !ok || !proposal.Active {
		return entities.Proposal{}, domainerrors.ErrProposalNotFound
	}
	return proposal, nil
}

func (s *Store) GetProposalByID(_ context.Context, proposalID int64) (entities.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, proposal := range s.proposals {
		if proposal.ID == proposalID && proposal.Active {
			return proposal, nil
		}
	}
	return entities.Proposal{}, domainerrors.ErrProposalNotFound
}

func (s *Store) FindByStudentAndConvocatoria(
	_ context.Context,
	studentID int64,
	convocatoriaID int64,
) (entities.Proposal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest entities.Proposal
	var found bool
	for _, proposal := range s.proposals {
		if !proposal.Active || proposal.StudentID != studentID || proposal.ConvocatoriaID != convocatoriaID {
			continue
		}
		if !found || proposal.CreatedAt.After(latest.CreatedAt) {
			latest = proposal
			found = true
		}
	}
	return latest, found, nil
}

func (s *Store) ListByStudent(_ context.Context, studentID int64) ([]entities.Proposal, error) {
	return s.listWhere(func(p entities.Proposal) bool {
		return p.StudentID == studentID
	}), nil
}

func (s *Store) ListByStatus(_ context.Context, status entities.ProposalStatus) ([]entities.Proposal, error) {
	return s.listWhere(func(p entities.Proposal) bool {
		return p.Status == status
	}), nil
}

func (s *Store) ListByConvocatoria(_ context.Context, convocatoriaID int64) ([]entities.Proposal, error) {
	return s.listWhere(func(p entities.Proposal) bool {
		return p.ConvocatoriaID == convocatoriaID
	}), nil
}

func (s *Store) ListAll(_ context.Context) ([]entities.Proposal, error) {
	return s.listWhere(func(entities.Proposal) bool { return true }), nil
}

func (s *Store) GetActiveConvocatoria(_ context.Context) (ports.ConvocatoriaProjection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return ports.ConvocatoriaProjection{}, false, nil
	}
	if !s.active.Deadline.IsZero() && time.Now().UTC().After(s.active.Deadline) {
		return ports.ConvocatoriaProjection{}, false, nil
	}
	return *s.active, true, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) listWhere(match func(entities.Proposal) bool) []entities.Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Proposal, 0, len(s.proposals))
	for _, proposal := range s.proposals {
		if proposal.Active && match(proposal) {
			items = append(items, proposal)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

var _ ports.ProposalRepository = (*Store)(nil)
var _ ports.ConvocatoriaGateway = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
