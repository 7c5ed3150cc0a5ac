package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pasantias/contexts/internship-program/proposal-service/application/commands"
	"pasantias/contexts/internship-program/proposal-service/application/queries"
	"pasantias/contexts/internship-program/proposal-service/domain/entities"
	httptransport "pasantias/contexts/internship-program/proposal-service/transport/http"
)

type Handler struct {
	Proposals commands.ProposalUseCase
	Reads     queries.ProposalUseCase
	Logger    *slog.Logger
}

func (h Handler) ValidateNewProposalHandler(ctx context.Context, studentID int64) (httptransport.ValidationResponse, error) {
	if err := h.Proposals.ValidateNewProposal(ctx, studentID); err != nil {
		return httptransport.ValidationResponse{}, err
	}
	return httptransport.ValidationResponse{CanSubmit: true}, nil
}

func (h Handler) CreateProposalHandler(
	ctx context.Context,
	studentID int64,
	req httptransport.CreateProposalRequest,
) (httptransport.ProposalResponse, error) {
	proposal, err := h.Proposals.CreateProposal(ctx, commands.CreateProposalCommand{
		StudentID: studentID,

		TutorID:        req.TutorID,
		InternshipType: req.InternshipType,

		CompanyShortName: req.CompanyShortName,
		CompanyLegalName: req.CompanyLegalName,
		CompanyTaxID:     req.CompanyTaxID,
		CompanyWebsite:   req.CompanyWebsite,
		CompanyLinkedIn:  req.CompanyLinkedIn,

		AddressState:          req.AddressState,
		AddressMunicipality:   req.AddressMunicipality,
		AddressSettlementType: req.AddressSettlementType,
		AddressSettlementName: req.AddressSettlementName,
		AddressStreetType:     req.AddressStreetType,
		AddressStreetName:     req.AddressStreetName,
		AddressExteriorNumber: req.AddressExteriorNumber,
		AddressInteriorNumber: req.AddressInteriorNumber,
		AddressPostalCode:     req.AddressPostalCode,

		ContactName:     req.ContactName,
		ContactPosition: req.ContactPosition,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		ContactArea:     req.ContactArea,

		SupervisorName:  req.SupervisorName,
		SupervisorArea:  req.SupervisorArea,
		SupervisorEmail: req.SupervisorEmail,
		SupervisorPhone: req.SupervisorPhone,

		ProjectName:         req.ProjectName,
		ProjectStart:        req.ProjectStart,
		ProjectEnd:          req.ProjectEnd,
		ProblemContext:      req.ProblemContext,
		ProblemDescription:  req.ProblemDescription,
		GeneralObjective:    req.GeneralObjective,
		SpecificObjectives:  req.SpecificObjectives,
		MainActivities:      req.MainActivities,
		PlannedDeliverables: req.PlannedDeliverables,
		Technologies:        req.Technologies,
	})
	if err != nil {
		return httptransport.ProposalResponse{}, err
	}
	return toProposalResponse(proposal), nil
}

func (h Handler) UpdateProposalHandler(
	ctx context.Context,
	proposalUUID string,
	studentID int64,
	req httptransport.UpdateProposalRequest,
) (httptransport.ProposalResponse, error) {
	proposal, err := h.Proposals.UpdateProposal(ctx, commands.UpdateProposalCommand{
		ProposalUUID: proposalUUID,
		StudentID:    studentID,

		TutorID:        req.TutorID,
		InternshipType: req.InternshipType,

		CompanyShortName: req.CompanyShortName,
		CompanyLegalName: req.CompanyLegalName,
		CompanyTaxID:     req.CompanyTaxID,
		CompanyWebsite:   req.CompanyWebsite,
		CompanyLinkedIn:  req.CompanyLinkedIn,

		AddressState:          req.AddressState,
		AddressMunicipality:   req.AddressMunicipality,
		AddressSettlementType: req.AddressSettlementType,
		AddressSettlementName: req.AddressSettlementName,
		AddressStreetType:     req.AddressStreetType,
		AddressStreetName:     req.AddressStreetName,
		AddressExteriorNumber: req.AddressExteriorNumber,
		AddressInteriorNumber: req.AddressInteriorNumber,
		AddressPostalCode:     req.AddressPostalCode,

		ContactName:     req.ContactName,
		ContactPosition: req.ContactPosition,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		ContactArea:     req.ContactArea,

		SupervisorName:  req.SupervisorName,
		SupervisorArea:  req.SupervisorArea,
		SupervisorEmail: req.SupervisorEmail,
		SupervisorPhone: req.SupervisorPhone,

		ProjectName:         req.ProjectName,
		ProjectStart:        req.ProjectStart,
		ProjectEnd:          req.ProjectEnd,
		ProblemContext:      req.ProblemContext,
		ProblemDescription:  req.ProblemDescription,
		GeneralObjective:    req.GeneralObjective,
		SpecificObjectives:  req.SpecificObjectives,
		MainActivities:      req.MainActivities,
		PlannedDeliverables: req.PlannedDeliverables,
		Technologies:        req.Technologies,
	})
	if err != nil {
		return httptransport.ProposalResponse{}, err
	}
	return toProposalResponse(proposal), nil
}

func (h Handler) SetStatusHandler(
	ctx context.Context,
	proposalUUID string,
	req httptransport.SetStatusRequest,
) (httptransport.ProposalResponse, error) {
	proposal, err := h.Proposals.SetStatus(ctx, proposalUUID, entities.ProposalStatus(req.Status))
	if err != nil {
		return httptransport.ProposalResponse{}, err
	}
	return toProposalResponse(proposal), nil
}

func (h Handler) GetProposalHandler(ctx context.Context, proposalUUID string) (httptransport.ProposalResponse, error) {
	proposal, err := h.Reads.Get(ctx, proposalUUID)
	if err != nil {
		return httptransport.ProposalResponse{}, err
	}
	return toProposalResponse(proposal), nil
}

func (h Handler) ListByStudentHandler(ctx context.Context, studentID int64) (httptransport.ProposalListResponse, error) {
	proposals, err := h.Reads.ListByStudent(ctx, studentID)
	if err != nil {
		return httptransport.ProposalListResponse{}, err
	}
	return httptransport.ProposalListResponse{Items: mapProposals(proposals)}, nil
}

func (h Handler) ListByStatusHandler(ctx context.Context, status string) (httptransport.ProposalListResponse, error) {
	proposals, err := h.Reads.ListByStatus(ctx, entities.ProposalStatus(status))
	if err != nil {
		return httptransport.ProposalListResponse{}, err
	}
	return httptransport.ProposalListResponse{Items: mapProposals(proposals)}, nil
}

func (h Handler) ListByConvocatoriaHandler(ctx context.Context, convocatoriaID int64) (httptransport.ProposalListResponse, error) {
	proposals, err := h.Reads.ListByConvocatoria(ctx, convocatoriaID)
	if err != nil {
		return httptransport.ProposalListResponse{}, err
	}
	return httptransport.ProposalListResponse{Items: mapProposals(proposals)}, nil
}

func (h Handler) ListAllHandler(ctx context.Context) (httptransport.ProposalListResponse, error) {
	proposals, err := h.Reads.ListAll(ctx)
	if err != nil {
		return httptransport.ProposalListResponse{}, err
	}
	return httptransport.ProposalListResponse{Items: mapProposals(proposals)}, nil
}

func toProposalResponse(proposal entities.Proposal) httptransport.ProposalResponse {
	return httptransport.ProposalResponse{
		ID:             proposal.ID,
		UUID:           proposal.UUID,
		StudentID:      proposal.StudentID,
		ConvocatoriaID: proposal.ConvocatoriaID,
		Status:         string(proposal.Status),

		TutorID:    proposal.TutorID,
		TutorName:  proposal.TutorName,
		TutorEmail: proposal.TutorEmail,

		InternshipType: proposal.InternshipType,

		CompanyShortName: proposal.CompanyShortName,
		CompanyLegalName: proposal.CompanyLegalName,
		CompanyTaxID:     proposal.CompanyTaxID,
		CompanyWebsite:   proposal.CompanyWebsite,
		CompanyLinkedIn:  proposal.CompanyLinkedIn,

		AddressState:          proposal.AddressState,
		AddressMunicipality:   proposal.AddressMunicipality,
		AddressSettlementType: proposal.AddressSettlementType,
		AddressSettlementName: proposal.AddressSettlementName,
		AddressStreetType:     proposal.AddressStreetType,
		AddressStreetName:     proposal.AddressStreetName,
		AddressExteriorNumber: proposal.AddressExteriorNumber,
		AddressInteriorNumber: proposal.AddressInteriorNumber,
		AddressPostalCode:     proposal.AddressPostalCode,

		ContactName:     proposal.ContactName,
		ContactPosition: proposal.ContactPosition,
		ContactEmail:    proposal.ContactEmail,
		ContactPhone:    proposal.ContactPhone,
		ContactArea:     proposal.ContactArea,

		SupervisorName:  proposal.SupervisorName,
		SupervisorArea:  proposal.SupervisorArea,
		SupervisorEmail: proposal.SupervisorEmail,
		SupervisorPhone: proposal.SupervisorPhone,

		ProjectName:         proposal.ProjectName,
		ProjectStart:        proposal.ProjectStart.UTC().Format(entities.DateLayout),
		ProjectEnd:          proposal.ProjectEnd.UTC().Format(entities.DateLayout),
		ProblemContext:      proposal.ProblemContext,
		ProblemDescription:  proposal.ProblemDescription,
		GeneralObjective:    proposal.GeneralObjective,
		SpecificObjectives:  proposal.SpecificObjectives,
		MainActivities:      proposal.MainActivities,
		PlannedDeliverables: proposal.PlannedDeliverables,
		Technologies:        proposal.Technologies,

		CreatedAt: proposal.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: proposal.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapProposals(proposals []entities.Proposal) []httptransport.ProposalResponse {
	items := make([]httptransport.ProposalResponse, 0, len(proposals))
	for _, proposal := range proposals {
		items = append(items, toProposalResponse(proposal))
	}
	return items
}
