package ports

import (
	"context"
	"time"

	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
)

type CommentRepository interface {
	SaveComment(ctx context.Context, comment entities.Comment) (entities.Comment, error)
	UpdateComment(ctx context.Context, comment entities.Comment) error
	GetComment(ctx context.Context, uuid string) (entities.Comment, error)
	ListActiveByProposal(ctx context.Context, proposalID int64) ([]entities.Comment, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]entities.Comment, error)
	FindBySection(ctx context.Context, proposalID int64, tutorID int64, sectionName string) (entities.Comment, bool, error)
	FindFinalVote(ctx context.Context, proposalID int64, tutorID int64) (entities.Comment, bool, error)
	CountActiveByTutor(ctx context.Context, proposalID int64, tutorID int64) (int, error)
}

// ProposalProjection is the slice of proposal state the engine needs: identity,
// owning convocatoria and current persisted status.
type ProposalProjection struct {
	ProposalID     int64
	UUID           string
	ConvocatoriaID int64
	Status         entities.ProposalStatus
}

type ProposalGateway interface {
	GetProposalByUUID(ctx context.Context, uuid string) (ProposalProjection, error)
	GetProposalByID(ctx context.Context, proposalID int64) (ProposalProjection, error)
	UpdateProposalStatus(ctx context.Context, proposalID int64, status entities.ProposalStatus) error
}

// ConvocatoriaProjection carries just enough of the call state to decide
// whether a proposal still belongs to the open call.
type ConvocatoriaProjection struct {
	ConvocatoriaID int64
	UUID           string
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
