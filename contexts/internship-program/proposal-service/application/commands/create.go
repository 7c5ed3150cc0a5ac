package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "pasantias/contexts/internship-program/proposal-service/application"
	"pasantias/contexts/internship-program/proposal-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/proposal-service/domain/errors"
	"pasantias/contexts/internship-program/proposal-service/ports"
)

// CreateProposalCommand mirrors the registration form. Dates travel as
// YYYY-MM-DD strings and are parsed against the submission clock.
type CreateProposalCommand struct {
	StudentID int64

	TutorID        int64
	InternshipType string

	CompanyShortName string
	CompanyLegalName string
	CompanyTaxID     string
	CompanyWebsite   string
	CompanyLinkedIn  string

	AddressState          string
	AddressMunicipality   string
	AddressSettlementType string
	AddressSettlementName string
	AddressStreetType     string
	AddressStreetName     string
	AddressExteriorNumber string
	AddressInteriorNumber string
	AddressPostalCode     string

	ContactName     string
	ContactPosition string
	ContactEmail    string
	ContactPhone    string
	ContactArea     string

	SupervisorName  string
	SupervisorArea  string
	SupervisorEmail string
	SupervisorPhone string

	ProjectName         string
	ProjectStart        string
	ProjectEnd          string
	ProblemContext      string
	ProblemDescription  string
	GeneralObjective    string
	SpecificObjectives  string
	MainActivities      string
	PlannedDeliverables string
	Technologies        string
}

// ProposalUseCase owns the proposal write side: admission into the active
// convocatoria, the registration form rules and the admin status override.
type ProposalUseCase struct {
	Proposals     ports.ProposalRepository
	Convocatorias ports.ConvocatoriaGateway
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

// ValidateNewProposal checks whether the student may register a proposal in
// the active convocatoria. A prior proposal blocks a new one unless it ended
// RECHAZADO; the returned error names the blocking status.
func (uc ProposalUseCase) ValidateNewProposal(ctx context.Context, studentID int64) error {
	if studentID <= 0 {
		return domainerrors.ErrInvalidProposalInput
	}
	convocatoria, err := uc.activeConvocatoria(ctx)
	if err != nil {
		return err
	}
	existing, found, err := uc.Proposals.FindByStudentAndConvocatoria(ctx, studentID, convocatoria.ConvocatoriaID)
	if err != nil {
		return err
	}
	if found && existing.Status != entities.StatusRejected {
		return fmt.Errorf("%w (estado: %s)", domainerrors.ErrProposalExists, existing.Status)
	}
	return nil
}

func (uc ProposalUseCase) CreateProposal(
	ctx context.Context,
	cmd CreateProposalCommand,
) (entities.Proposal, error) {
	logger := application.ResolveLogger(uc.Logger)
	logger.Info("proposal creation started",
		"event", "proposal_create_started",
		"module", "internship-program/proposal-service",
		"layer", "application",
		"student_id", cmd.StudentID,
		"internship_type", strings.TrimSpace(cmd.InternshipType),
	)

	if err := uc.ValidateNewProposal(ctx, cmd.StudentID); err != nil {
		return entities.Proposal{}, err
	}
	if reason, ok := missingRequiredField(cmd); ok {
		logger.Warn("proposal creation rejected",
			"event", "proposal_create_rejected",
			"module", "internship-program/proposal-service",
			"layer", "application",
			"reason", "missing_required_field",
			"field", reason,
		)
		return entities.Proposal{}, domainerrors.ErrInvalidProposalInput
	}
	if !entities.ValidEmail(cmd.ContactEmail) || !entities.ValidEmail(cmd.SupervisorEmail) {
		return entities.Proposal{}, domainerrors.ErrInvalidEmail
	}

	convocatoria, err := uc.activeConvocatoria(ctx)
	if err != nil {
		return entities.Proposal{}, err
	}
	internshipType := strings.TrimSpace(cmd.InternshipType)
	if !convocatoria.OffersType(internshipType) {
		logger.Warn("proposal creation rejected",
			"event", "proposal_create_rejected",
			"module", "internship-program/proposal-service",
			"layer", "application",
			"reason", "type_not_offered",
			"internship_type", internshipType,
			"convocatoria_uuid", convocatoria.UUID,
		)
		return entities.Proposal{}, domainerrors.ErrTypeNotOffered
	}
	tutor, ok := convocatoria.FindTutor(cmd.TutorID)
	if !ok {
		logger.Warn("proposal creation rejected",
			"event", "proposal_create_rejected",
			"module", "internship-program/proposal-service",
			"layer", "application",
			"reason", "tutor_not_in_roster",
			"tutor_id", cmd.TutorID,
			"convocatoria_uuid", convocatoria.UUID,
		)
		return entities.Proposal{}, domainerrors.ErrTutorNotInConvocatoria
	}

	now := uc.now()
	start, end, err := parseProjectDates(cmd.ProjectStart, cmd.ProjectEnd, now)
	if err != nil {
		return entities.Proposal{}, err
	}

	uuid, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Proposal{}, err
	}

	proposal := entities.Proposal{
		UUID:           uuid,
		StudentID:      cmd.StudentID,
		ConvocatoriaID: convocatoria.ConvocatoriaID,
		Status:         entities.StatusPending,
		Active:         true,

		TutorID:    tutor.ID,
		TutorName:  tutor.Name,
		TutorEmail: tutor.Email,

		InternshipType: internshipType,

		CompanyShortName: strings.TrimSpace(cmd.CompanyShortName),
		CompanyLegalName: strings.TrimSpace(cmd.CompanyLegalName),
		CompanyTaxID:     strings.TrimSpace(cmd.CompanyTaxID),
		CompanyWebsite:   strings.TrimSpace(cmd.CompanyWebsite),
		CompanyLinkedIn:  strings.TrimSpace(cmd.CompanyLinkedIn),

		AddressState:          strings.TrimSpace(cmd.AddressState),
		AddressMunicipality:   strings.TrimSpace(cmd.AddressMunicipality),
		AddressSettlementType: strings.TrimSpace(cmd.AddressSettlementType),
		AddressSettlementName: strings.TrimSpace(cmd.AddressSettlementName),
		AddressStreetType:     strings.TrimSpace(cmd.AddressStreetType),
		AddressStreetName:     strings.TrimSpace(cmd.AddressStreetName),
		AddressExteriorNumber: strings.TrimSpace(cmd.AddressExteriorNumber),
		AddressInteriorNumber: strings.TrimSpace(cmd.AddressInteriorNumber),
		AddressPostalCode:     strings.TrimSpace(cmd.AddressPostalCode),

		ContactName:     strings.TrimSpace(cmd.ContactName),
		ContactPosition: strings.TrimSpace(cmd.ContactPosition),
		ContactEmail:    strings.TrimSpace(cmd.ContactEmail),
		ContactPhone:    strings.TrimSpace(cmd.ContactPhone),
		ContactArea:     strings.TrimSpace(cmd.ContactArea),

		SupervisorName:  strings.TrimSpace(cmd.SupervisorName),
		SupervisorArea:  strings.TrimSpace(cmd.SupervisorArea),
		SupervisorEmail: strings.TrimSpace(cmd.SupervisorEmail),
		SupervisorPhone: strings.TrimSpace(cmd.SupervisorPhone),

		ProjectName:         strings.TrimSpace(cmd.ProjectName),
		ProjectStart:        start,
		ProjectEnd:          end,
		ProblemContext:      strings.TrimSpace(cmd.ProblemContext),
		ProblemDescription:  strings.TrimSpace(cmd.ProblemDescription),
		GeneralObjective:    strings.TrimSpace(cmd.GeneralObjective),
		SpecificObjectives:  strings.TrimSpace(cmd.SpecificObjectives),
		MainActivities:      strings.TrimSpace(cmd.MainActivities),
		PlannedDeliverables: strings.TrimSpace(cmd.PlannedDeliverables),
		Technologies:        strings.TrimSpace(cmd.Technologies),

		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := uc.Proposals.SaveProposal(ctx, proposal)
	if err != nil {
		return entities.Proposal{}, err
	}

	logger.Info("proposal created",
		"event", "proposal_created",
		"module", "internship-program/proposal-service",
		"layer", "application",
		"proposal_uuid", saved.UUID,
		"student_id", saved.StudentID,
		"convocatoria_id", saved.ConvocatoriaID,
	)
	return saved, nil
}

func (uc ProposalUseCase) activeConvocatoria(ctx context.Context) (ports.ConvocatoriaProjection, error) {
	convocatoria, found, err := uc.Convocatorias.GetActiveConvocatoria(ctx)
	if err != nil {
		return ports.ConvocatoriaProjection{}, err
	}
	if !found {
		return ports.ConvocatoriaProjection{}, domainerrors.ErrNoActiveConvocatoria
	}
	if !convocatoria.Deadline.IsZero() && uc.now().After(convocatoria.Deadline) {
		return ports.ConvocatoriaProjection{}, domainerrors.ErrNoActiveConvocatoria
	}
	return convocatoria, nil
}

func missingRequiredField(cmd CreateProposalCommand) (string, bool) {
	required := []struct {
		name  string
		value string
	}{
		{"internship_type", cmd.InternshipType},
		{"company_short_name", cmd.CompanyShortName},
		{"company_legal_name", cmd.CompanyLegalName},
		{"company_tax_id", cmd.CompanyTaxID},
		{"address_state", cmd.AddressState},
		{"address_municipality", cmd.AddressMunicipality},
		{"contact_name", cmd.ContactName},
		{"contact_email", cmd.ContactEmail},
		{"supervisor_name", cmd.SupervisorName},
		{"supervisor_email", cmd.SupervisorEmail},
		{"project_name", cmd.ProjectName},
		{"project_start", cmd.ProjectStart},
		{"project_end", cmd.ProjectEnd},
		{"general_objective", cmd.GeneralObjective},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return field.name, true
		}
	}
	if cmd.TutorID <= 0 {
		return "tutor_id", true
	}
	return "", false
}

func parseProjectDates(rawStart, rawEnd string, now time.Time) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(entities.DateLayout, strings.TrimSpace(rawStart), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domainerrors.ErrInvalidProjectDates
	}
	end, err := time.ParseInLocation(entities.DateLayout, strings.TrimSpace(rawEnd), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domainerrors.ErrInvalidProjectDates
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return time.Time{}, time.Time{}, domainerrors.ErrInvalidProjectDates
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, domainerrors.ErrInvalidProjectDates
	}
	if end.Sub(start) < entities.MinProjectDuration {
		return time.Time{}, time.Time{}, domainerrors.ErrProjectTooShort
	}
	return start, end, nil
}

func (uc ProposalUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
