package commands

import (
	"context"
	"strings"

	application "pasantias/contexts/internship-program/proposal-service/application"
	"pasantias/contexts/internship-program/proposal-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/proposal-service/domain/errors"
)

// UpdateProposalCommand is a partial patch: nil fields keep their stored
// value. Changing the internship type or tutor re-runs the membership checks
// against the active convocatoria; changing either date re-validates the pair.
type UpdateProposalCommand struct {
	ProposalUUID string
	StudentID    int64

	TutorID        *int64
	InternshipType *string

	CompanyShortName *string
	CompanyLegalName *string
	CompanyTaxID     *string
	CompanyWebsite   *string
	CompanyLinkedIn  *string

	AddressState          *string
	AddressMunicipality   *string
	AddressSettlementType *string
	AddressSettlementName *string
	AddressStreetType     *string
	AddressStreetName     *string
	AddressExteriorNumber *string
	AddressInteriorNumber *string
	AddressPostalCode     *string

	ContactName     *string
	ContactPosition *string
	ContactEmail    *string
	ContactPhone    *string
	ContactArea     *string

	SupervisorName  *string
	SupervisorArea  *string
	SupervisorEmail *string
	SupervisorPhone *string

	ProjectName         *string
	ProjectStart        *string
	ProjectEnd          *string
	ProblemContext      *string
	ProblemDescription  *string
	GeneralObjective    *string
	SpecificObjectives  *string
	MainActivities      *string
	PlannedDeliverables *string
	Technologies        *string
}

func (uc ProposalUseCase) UpdateProposal(
	ctx context.Context,
	cmd UpdateProposalCommand,
) (entities.Proposal, error) {
	logger := application.ResolveLogger(uc.Logger)

	uuid := strings.TrimSpace(cmd.ProposalUUID)
	if uuid == "" || cmd.StudentID <= 0 {
		return entities.Proposal{}, domainerrors.ErrInvalidProposalInput
	}

	proposal, err := uc.Proposals.GetProposal(ctx, uuid)
	if err != nil {
		return entities.Proposal{}, err
	}
	if proposal.StudentID != cmd.StudentID {
		return entities.Proposal{}, domainerrors.ErrProposalNotFound
	}
	if !proposal.Editable() {
		logger.Warn("proposal update rejected",
			"event", "proposal_update_rejected",
			"module", "internship-program/proposal-service",
			"layer", "application",
			"proposal_uuid", uuid,
			"status", string(proposal.Status),
		)
		return entities.Proposal{}, domainerrors.ErrProposalLocked
	}

	convocatoria, err := uc.activeConvocatoria(ctx)
	if err != nil {
		return entities.Proposal{}, err
	}
	if proposal.ConvocatoriaID != convocatoria.ConvocatoriaID {
		// The proposal's call is over; edits no longer make sense.
		return entities.Proposal{}, domainerrors.ErrNoActiveConvocatoria
	}

	if cmd.InternshipType != nil {
		internshipType := strings.TrimSpace(*cmd.InternshipType)
		if !convocatoria.OffersType(internshipType) {
			return entities.Proposal{}, domainerrors.ErrTypeNotOffered
		}
		proposal.InternshipType = internshipType
	}
	if cmd.TutorID != nil {
		tutor, ok := convocatoria.FindTutor(*cmd.TutorID)
		if !ok {
			return entities.Proposal{}, domainerrors.ErrTutorNotInConvocatoria
		}
		proposal.TutorID = tutor.ID
		proposal.TutorName = tutor.Name
		proposal.TutorEmail = tutor.Email
	}
	if cmd.ContactEmail != nil && !entities.ValidEmail(*cmd.ContactEmail) {
		return entities.Proposal{}, domainerrors.ErrInvalidEmail
	}
	if cmd.SupervisorEmail != nil && !entities.ValidEmail(*cmd.SupervisorEmail) {
		return entities.Proposal{}, domainerrors.ErrInvalidEmail
	}

	now := uc.now()
	if cmd.ProjectStart != nil || cmd.ProjectEnd != nil {
		rawStart := proposal.ProjectStart.Format(entities.DateLayout)
		rawEnd := proposal.ProjectEnd.Format(entities.DateLayout)
		if cmd.ProjectStart != nil {
			rawStart = *cmd.ProjectStart
		}
		if cmd.ProjectEnd != nil {
			rawEnd = *cmd.ProjectEnd
		}
		start, end, err := parseProjectDates(rawStart, rawEnd, now)
		if err != nil {
			return entities.Proposal{}, err
		}
		proposal.ProjectStart = start
		proposal.ProjectEnd = end
	}

	applyString(&proposal.CompanyShortName, cmd.CompanyShortName)
	applyString(&proposal.CompanyLegalName, cmd.CompanyLegalName)
	applyString(&proposal.CompanyTaxID, cmd.CompanyTaxID)
	applyString(&proposal.CompanyWebsite, cmd.CompanyWebsite)
	applyString(&proposal.CompanyLinkedIn, cmd.CompanyLinkedIn)
	applyString(&proposal.AddressState, cmd.AddressState)
	applyString(&proposal.AddressMunicipality, cmd.AddressMunicipality)
	applyString(&proposal.AddressSettlementType, cmd.AddressSettlementType)
	applyString(&proposal.AddressSettlementName, cmd.AddressSettlementName)
	applyString(&proposal.AddressStreetType, cmd.AddressStreetType)
	applyString(&proposal.AddressStreetName, cmd.AddressStreetName)
	applyString(&proposal.AddressExteriorNumber, cmd.AddressExteriorNumber)
	applyString(&proposal.AddressInteriorNumber, cmd.AddressInteriorNumber)
	applyString(&proposal.AddressPostalCode, cmd.AddressPostalCode)
	applyString(&proposal.ContactName, cmd.ContactName)
	applyString(&proposal.ContactPosition, cmd.ContactPosition)
	applyString(&proposal.ContactEmail, cmd.ContactEmail)
	applyString(&proposal.ContactPhone, cmd.ContactPhone)
	applyString(&proposal.ContactArea, cmd.ContactArea)
	applyString(&proposal.SupervisorName, cmd.SupervisorName)
	applyString(&proposal.SupervisorArea, cmd.SupervisorArea)
	applyString(&proposal.SupervisorEmail, cmd.SupervisorEmail)
	applyString(&proposal.SupervisorPhone, cmd.SupervisorPhone)
	applyString(&proposal.ProjectName, cmd.ProjectName)
	applyString(&proposal.ProblemContext, cmd.ProblemContext)
	applyString(&proposal.ProblemDescription, cmd.ProblemDescription)
	applyString(&proposal.GeneralObjective, cmd.GeneralObjective)
	applyString(&proposal.SpecificObjectives, cmd.SpecificObjectives)
	applyString(&proposal.MainActivities, cmd.MainActivities)
	applyString(&proposal.PlannedDeliverables, cmd.PlannedDeliverables)
	applyString(&proposal.Technologies, cmd.Technologies)

	proposal.UpdatedAt = now
	if err := uc.Proposals.UpdateProposal(ctx, proposal); err != nil {
		return entities.Proposal{}, err
	}

	logger.Info("proposal updated",
		"event", "proposal_updated",
		"module", "internship-program/proposal-service",
		"layer", "application",
		"proposal_uuid", proposal.UUID,
		"student_id", proposal.StudentID,
	)
	return proposal, nil
}

// SetStatus is the administrative override that bypasses the evaluation
// engine. It still requires a recognized status value.
func (uc ProposalUseCase) SetStatus(
	ctx context.Context,
	proposalUUID string,
	status entities.ProposalStatus,
) (entities.Proposal, error) {
	logger := application.ResolveLogger(uc.Logger)

	uuid := strings.TrimSpace(proposalUUID)
	if uuid == "" {
		return entities.Proposal{}, domainerrors.ErrInvalidProposalInput
	}
	if !status.Valid() {
		return entities.Proposal{}, domainerrors.ErrInvalidStatus
	}

	proposal, err := uc.Proposals.GetProposal(ctx, uuid)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := uc.Proposals.UpdateStatus(ctx, proposal.ID, status); err != nil {
		return entities.Proposal{}, err
	}
	proposal.Status = status
	proposal.UpdatedAt = uc.now()

	logger.Info("proposal status overridden",
		"event", "proposal_status_overridden",
		"module", "internship-program/proposal-service",
		"layer", "application",
		"proposal_uuid", proposal.UUID,
		"status", string(status),
	)
	return proposal, nil
}

func applyString(target *string, value *string) {
	if value != nil {
		*target = strings.TrimSpace(*value)
	}
}
