package queries

import (
	"context"
	"strings"

	"pasantias/contexts/internship-program/proposal-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/proposal-service/domain/errors"
	"pasantias/contexts/internship-program/proposal-service/ports"
)

type ProposalUseCase struct {
	Proposals ports.ProposalRepository
}

func (uc ProposalUseCase) Get(ctx context.Context, uuid string) (entities.Proposal, error) {
	trimmed := strings.TrimSpace(uuid)
	if trimmed == "" {
		return entities.Proposal{}, domainerrors.ErrInvalidProposalInput
	}
	return uc.Proposals.GetProposal(ctx, trimmed)
}

func (uc ProposalUseCase) ListByStudent(ctx context.Context, studentID int64) ([]entities.Proposal, error) {
	if studentID <= 0 {
		return nil, domainerrors.ErrInvalidProposalInput
	}
	return uc.Proposals.ListByStudent(ctx, studentID)
}

func (uc ProposalUseCase) ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}
	return uc.Proposals.ListByStatus(ctx, status)
}

func (uc ProposalUseCase) ListByConvocatoria(ctx context.Context, convocatoriaID int64) ([]entities.Proposal, error) {
	if convocatoriaID <= 0 {
		return nil, domainerrors.ErrInvalidProposalInput
	}
	return uc.Proposals.ListByConvocatoria(ctx, convocatoriaID)
}

// ListAll returns proposals across every convocatoria, past and present.
func (uc ProposalUseCase) ListAll(ctx context.Context) ([]entities.Proposal, error) {
	return uc.Proposals.ListAll(ctx)
}
