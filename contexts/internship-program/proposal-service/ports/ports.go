package ports

import (
	"context"
	"time"

	"pasantias/contexts/internship-program/proposal-service/domain/entities"
)

type ProposalRepository interface {
	SaveProposal(ctx context.Context, proposal entities.Proposal) (entities.Proposal, error)
	UpdateProposal(ctx context.Context, proposal entities.Proposal) error
	UpdateStatus(ctx context.Context, proposalID int64, status entities.ProposalStatus) error
	GetProposal(ctx context.Context, uuid string) (entities.Proposal, error)
	GetProposalByID(ctx context.Context, proposalID int64) (entities.Proposal, error)
	FindByStudentAndConvocatoria(ctx context.Context, studentID int64, convocatoriaID int64) (entities.Proposal, bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]entities.Proposal, error)
	ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error)
	ListByConvocatoria(ctx context.Context, convocatoriaID int64) ([]entities.Proposal, error)
	ListAll(ctx context.Context) ([]entities.Proposal, error)
}

// TutorRef is the roster entry the membership checks run against.
type TutorRef struct {
	ID    int64
	Name  string
	Email string
}

// ConvocatoriaProjection carries the slice of the active call the proposal
// rules need: identity, deadline, offered types and the tutor roster.
type ConvocatoriaProjection struct {
	ConvocatoriaID  int64
	UUID            string
	Deadline        time.Time
	InternshipTypes []string
	Tutors          []TutorRef
}

// OffersType reports whether the projected call offers the internship type.
func (p ConvocatoriaProjection) OffersType(internshipType string) bool {
	for _, t := range p.InternshipTypes {
		if t == internshipType {
			return true
		}
	}
	return false
}

// FindTutor locates a roster entry by id.
func (p ConvocatoriaProjection) FindTutor(tutorID int64) (TutorRef, bool) {
	for _, t := range p.Tutors {
		if t.ID == tutorID {
			return t, true
		}
	}
	return TutorRef{}, false
}

type ConvocatoriaGateway interface {
	GetActiveConvocatoria(ctx context.Context) (ConvocatoriaProjection, bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
