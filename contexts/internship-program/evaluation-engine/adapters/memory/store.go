package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
	domainerrors "pasantias/contexts/internship-program/evaluation-engine/domain/errors"
	"pasantias/contexts/internship-program/evaluation-engine/ports"

	"github.com/google/uuid"
)

// Store is the in-memory adapter used by tests and local wiring. It also
// doubles as the proposal/convocatoria projection source for the engine.
type Store struct {
	mu sync.RWMutex

	comments map[string]entities.Comment
	nextID   int64

	proposals map[int64]ports.ProposalProjection
	active    *ports.ConvocatoriaProjection
}

func NewStore(seed []entities.Comment) *Store {
	comments := make(map[string]entities.Comment, len(seed))
	var nextID int64
	for _, comment := range seed {
		comments[comment.UUID] = comment
		if comment.ID > nextID {
			nextID = comment.ID
		}
	}
	return &Store{
		comments:  comments,
		nextID:    nextID,
		proposals: make(map[int64]ports.ProposalProjection),
	}
}

func (s *Store) SetProposal(projection ports.ProposalProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proposals[projection.ProposalID] = projection
}

func (s *Store) SetActiveConvocatoria(projection ports.ConvocatoriaProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = &projection
}

func (s *Store) ClearActiveConvocatoria() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

func (s *Store) SaveComment(_ context.Context, comment entities.Comment) (entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if comment.ID == 0 {
		s.nextID++
		comment.ID = s.nextID
	}
	s.comments[comment.UUID] = comment
	return comment, nil
}

func (s *Store) UpdateComment(_ context.Context, comment entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[comment.UUID]; !ok {
		return domainerrors.ErrCommentNotFound
	}
	s.comments[comment.UUID] = comment
	return nil
}

func (s *Store) GetComment(_ context.Context, commentUUID string) (entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comment, ok := s.comments[strings.TrimSpace(commentUUID)]
	if !ok || !comment.Active {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	return comment, nil
}

func (s *Store) ListActiveByProposal(_ context.Context, proposalID int64) ([]entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Comment, 0)
	for _, comment := range s.comments {
		if comment.ProposalID == proposalID && comment.Active {
			items = append(items, comment)
		}
	}
	sortCommentsByCreation(items)
	return items, nil
}

func (s *Store) ListByTutor(_ context.Context, tutorID int64) ([]entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Comment, 0)
	for _, comment := range s.comments {
		if comment.TutorID == tutorID && comment.Active {
			items = append(items, comment)
		}
	}
	sortCommentsByCreation(items)
	return items, nil
}

func (s *Store) FindBySection(
	_ context.Context,
	proposalID int64,
	tutorID int64,
	sectionName string,
) (entities.Comment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, comment := range s.comments {
		if comment.ProposalID == proposalID &&
			comment.TutorID == tutorID &&
			comment.SectionName == strings.TrimSpace(sectionName) &&
			comment.Active {
			return comment, true, nil
		}
	}
	return entities.Comment{}, false, nil
}

func (s *Store) FindFinalVote(
	_ context.Context,
	proposalID int64,
	tutorID int64,
) (entities.Comment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest entities.Comment
	found := false
	for _, comment := range s.comments {
		if comment.ProposalID != proposalID || comment.TutorID != tutorID || !comment.Active {
			continue
		}
		if !comment.Vote.Final() {
			continue
		}
		if !found || comment.CreatedAt.After(latest.CreatedAt) {
			latest = comment
			found = true
		}
	}
	return latest, found, nil
}

func (s *Store) CountActiveByTutor(_ context.Context, proposalID int64, tutorID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, comment := range s.comments {
		if comment.ProposalID == proposalID && comment.TutorID == tutorID && comment.Active {
			count++
		}
	}
	return count, nil
}

func (s *Store) GetProposalByUUID(_ context.Context, proposalUUID string) (ports.ProposalProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, projection := range s.proposals {
		if projection.UUID == strings.TrimSpace(proposalUUID) {
			return projection, nil
		}
	}
	return ports.ProposalProjection{}, domainerrors.ErrProposalNotFound
}

func (s *Store) GetProposalByID(_ context.Context, proposalID int64) (ports.ProposalProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projection, ok := s.proposals[proposalID]
	if !ok {
		return ports.ProposalProjection{}, domainerrors.ErrProposalNotFound
	}
	return projection, nil
}

func (s *Store) UpdateProposalStatus(
	_ context.Context,
	proposalID int64,
	status entities.ProposalStatus,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	projection, ok := s.proposals[proposalID]
	if !ok {
		return domainerrors.ErrProposalNotFound
	}
	projection.Status = status
	s.proposals[proposalID] = projection
	return nil
}

func (s *Store) GetActiveConvocatoria(_ context.Context) (ports.ConvocatoriaProjection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
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

func sortCommentsByCreation(items []entities.Comment) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

var _ ports.CommentRepository = (*Store)(nil)
var _ ports.ProposalGateway = (*Store)(nil)
var _ ports.ConvocatoriaGateway = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
