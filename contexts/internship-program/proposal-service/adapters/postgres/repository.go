package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pasantias/contexts/internship-program/proposal-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/proposal-service/domain/errors"
	"pasantias/contexts/internship-program/proposal-service/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) SaveProposal(ctx context.Context, proposal entities.Proposal) (entities.Proposal, error) {
	row := proposalModelFromEntity(proposal)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Proposal{}, r.logError("proposal_repo_save_failed", err,
			"proposal_uuid", row.UUID,
			"student_id", proposal.StudentID,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateProposal(ctx context.Context, proposal entities.Proposal) error {
	row := proposalModelFromEntity(proposal)
	result := r.db.WithContext(ctx).
		Model(&proposalModel{}).
		Where("uuid = ?", row.UUID).
		Select("*").
		Omit("id", "uuid", "student_id", "convocatoria_id", "created_at").
		Updates(&row)
	if result.Error != nil {
		return r.logError("proposal_repo_update_failed", result.Error,
			"proposal_uuid", row.UUID,
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProposalNotFound
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, proposalID int64, status entities.ProposalStatus) error {
	result := r.db.WithContext(ctx).
		Model(&proposalModel{}).
		Where("id = ?", proposalID).
		Updates(map[string]any{
			"proposal_status": string(status),
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return r.logError("proposal_repo_update_status_failed", result.Error,
			"proposal_id", proposalID,
			"status", string(status),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProposalNotFound
	}
	return nil
}

func (r *Repository) GetProposal(ctx context.Context, proposalUUID string) (entities.Proposal, error) {
	var row proposalModel
	err := r.db.WithContext(ctx).
		Where("uuid = ?", strings.TrimSpace(proposalUUID)).
		Where("active = ?", true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Proposal{}, domainerrors.ErrProposalNotFound
		}
		return entities.Proposal{}, r.logError("proposal_repo_get_failed", err,
			"proposal_uuid", strings.TrimSpace(proposalUUID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetProposalByID(ctx context.Context, proposalID int64) (entities.Proposal, error) {
	var row proposalModel
	err := r.db.WithContext(ctx).
		Where("id = ?", proposalID).
		Where("active = ?", true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Proposal{}, domainerrors.ErrProposalNotFound
		}
		return entities.Proposal{}, r.logError("proposal_repo_get_by_id_failed", err,
			"proposal_id", proposalID,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) FindByStudentAndConvocatoria(
	ctx context.Context,
	studentID int64,
	convocatoriaID int64,
) (entities.Proposal, bool, error) {
	var row proposalModel
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Where("convocatoria_id = ?", convocatoriaID).
		Where("active = ?", true).
		Order("created_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Proposal{}, false, nil
		}
		return entities.Proposal{}, false, r.logError("proposal_repo_find_by_student_failed", err,
			"student_id", studentID,
			"convocatoria_id", convocatoriaID,
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListByStudent(ctx context.Context, studentID int64) ([]entities.Proposal, error) {
	return r.list(ctx, "proposal_repo_list_by_student_failed", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("student_id = ?", studentID)
	})
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error) {
	return r.list(ctx, "proposal_repo_list_by_status_failed", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("proposal_status = ?", string(status))
	})
}

func (r *Repository) ListByConvocatoria(ctx context.Context, convocatoriaID int64) ([]entities.Proposal, error) {
	return r.list(ctx, "proposal_repo_list_by_convocatoria_failed", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("convocatoria_id = ?", convocatoriaID)
	})
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Proposal, error) {
	return r.list(ctx, "proposal_repo_list_all_failed", func(tx *gorm.DB) *gorm.DB {
		return tx
	})
}

// GetActiveConvocatoria projects the open call with the pieces the proposal
// rules check: offered types and the tutor roster. A call past its deadline is
// not open, even while the expiration sweep has yet to clear its active flag.
func (r *Repository) GetActiveConvocatoria(ctx context.Context) (ports.ConvocatoriaProjection, bool, error) {
	var row activeConvocatoriaModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("fecha_limite >= ?", time.Now().UTC()).
		Order("fecha_limite DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ConvocatoriaProjection{}, false, nil
		}
		return ports.ConvocatoriaProjection{}, false, r.logError("proposal_repo_get_active_convocatoria_failed", err)
	}

	var typeRows []convocatoriaTypeRow
	if err := r.db.WithContext(ctx).
		Where("convocatoria_id = ?", row.ID).
		Find(&typeRows).Error; err != nil {
		return ports.ConvocatoriaProjection{}, false, r.logError("proposal_repo_load_types_failed", err,
			"convocatoria_id", row.ID,
		)
	}
	var tutorRows []convocatoriaTutorRow
	if err := r.db.WithContext(ctx).
		Where("convocatoria_id = ?", row.ID).
		Find(&tutorRows).Error; err != nil {
		return ports.ConvocatoriaProjection{}, false, r.logError("proposal_repo_load_tutors_failed", err,
			"convocatoria_id", row.ID,
		)
	}

	projection := ports.ConvocatoriaProjection{
		ConvocatoriaID: row.ID,
		UUID:           row.UUID,
		Deadline:       row.Deadline.UTC(),
	}
	for _, t := range typeRows {
		projection.InternshipTypes = append(projection.InternshipTypes, t.TypeName)
	}
	for _, t := range tutorRows {
		projection.Tutors = append(projection.Tutors, ports.TutorRef{
			ID:    t.TutorID,
			Name:  t.TutorName,
			Email: t.TutorEmail,
		})
	}
	return projection, true, nil
}

func (r *Repository) list(
	ctx context.Context,
	event string,
	scope func(*gorm.DB) *gorm.DB,
) ([]entities.Proposal, error) {
	var rows []proposalModel
	tx := r.db.WithContext(ctx).Where("active = ?", true).Order("created_at ASC")
	if err := scope(tx).Find(&rows).Error; err != nil {
		return nil, r.logError(event, err)
	}
	items := make([]entities.Proposal, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "internship-program/proposal-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("proposal repository operation failed", fields...)
	return err
}

type proposalModel struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UUID           string `gorm:"column:uuid"`
	StudentID      int64  `gorm:"column:student_id"`
	ConvocatoriaID int64  `gorm:"column:convocatoria_id"`
	Status         string `gorm:"column:proposal_status"`
	Active         bool   `gorm:"column:active"`

	TutorID    int64  `gorm:"column:tutor_id"`
	TutorName  string `gorm:"column:tutor_name"`
	TutorEmail string `gorm:"column:tutor_email"`

	InternshipType string `gorm:"column:internship_type"`

	CompanyShortName string `gorm:"column:company_short_name"`
	CompanyLegalName string `gorm:"column:company_legal_name"`
	CompanyTaxID     string `gorm:"column:company_tax_id"`
	CompanyWebsite   string `gorm:"column:company_website"`
	CompanyLinkedIn  string `gorm:"column:company_linkedin"`

	AddressState          string `gorm:"column:address_state"`
	AddressMunicipality   string `gorm:"column:address_municipality"`
	AddressSettlementType string `gorm:"column:address_settlement_type"`
	AddressSettlementName string `gorm:"column:address_settlement_name"`
	AddressStreetType     string `gorm:"column:address_street_type"`
	AddressStreetName     string `gorm:"column:address_street_name"`
	AddressExteriorNumber string `gorm:"column:address_exterior_number"`
	AddressInteriorNumber string `gorm:"column:address_interior_number"`
	AddressPostalCode     string `gorm:"column:address_postal_code"`

	ContactName     string `gorm:"column:contact_name"`
	ContactPosition string `gorm:"column:contact_position"`
	ContactEmail    string `gorm:"column:contact_email"`
	ContactPhone    string `gorm:"column:contact_phone"`
	ContactArea     string `gorm:"column:contact_area"`

	SupervisorName  string `gorm:"column:supervisor_name"`
	SupervisorArea  string `gorm:"column:supervisor_area"`
	SupervisorEmail string `gorm:"column:supervisor_email"`
	SupervisorPhone string `gorm:"column:supervisor_phone"`

	ProjectName         string    `gorm:"column:project_name"`
	ProjectStart        time.Time `gorm:"column:project_start"`
	ProjectEnd          time.Time `gorm:"column:project_end"`
	ProblemContext      string    `gorm:"column:problem_context"`
	ProblemDescription  string    `gorm:"column:problem_description"`
	GeneralObjective    string    `gorm:"column:general_objective"`
	SpecificObjectives  string    `gorm:"column:specific_objectives"`
	MainActivities      string    `gorm:"column:main_activities"`
	PlannedDeliverables string    `gorm:"column:planned_deliverables"`
	Technologies        string    `gorm:"column:technologies"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (proposalModel) TableName() string {
	return "project_proposals"
}

func proposalModelFromEntity(proposal entities.Proposal) proposalModel {
	row := proposalModel{
		ID:             proposal.ID,
		UUID:           strings.TrimSpace(proposal.UUID),
		StudentID:      proposal.StudentID,
		ConvocatoriaID: proposal.ConvocatoriaID,
		Status:         string(proposal.Status),
		Active:         proposal.Active,

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
		ProjectStart:        proposal.ProjectStart.UTC(),
		ProjectEnd:          proposal.ProjectEnd.UTC(),
		ProblemContext:      proposal.ProblemContext,
		ProblemDescription:  proposal.ProblemDescription,
		GeneralObjective:    proposal.GeneralObjective,
		SpecificObjectives:  proposal.SpecificObjectives,
		MainActivities:      proposal.MainActivities,
		PlannedDeliverables: proposal.PlannedDeliverables,
		Technologies:        proposal.Technologies,

		CreatedAt: proposal.CreatedAt.UTC(),
		UpdatedAt: proposal.UpdatedAt.UTC(),
	}
	if row.UUID == "" {
		row.UUID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m proposalModel) toEntity() entities.Proposal {
	return entities.Proposal{
		ID:             m.ID,
		UUID:           m.UUID,
		StudentID:      m.StudentID,
		ConvocatoriaID: m.ConvocatoriaID,
		Status:         entities.ProposalStatus(m.Status),
		Active:         m.Active,

		TutorID:    m.TutorID,
		TutorName:  m.TutorName,
		TutorEmail: m.TutorEmail,

		InternshipType: m.InternshipType,

		CompanyShortName: m.CompanyShortName,
		CompanyLegalName: m.CompanyLegalName,
		CompanyTaxID:     m.CompanyTaxID,
		CompanyWebsite:   m.CompanyWebsite,
		CompanyLinkedIn:  m.CompanyLinkedIn,

		AddressState:          m.AddressState,
		AddressMunicipality:   m.AddressMunicipality,
		AddressSettlementType: m.AddressSettlementType,
		AddressSettlementName: m.AddressSettlementName,
		AddressStreetType:     m.AddressStreetType,
		AddressStreetName:     m.AddressStreetName,
		AddressExteriorNumber: m.AddressExteriorNumber,
		AddressInteriorNumber: m.AddressInteriorNumber,
		AddressPostalCode:     m.AddressPostalCode,

		ContactName:     m.ContactName,
		ContactPosition: m.ContactPosition,
		ContactEmail:    m.ContactEmail,
		ContactPhone:    m.ContactPhone,
		ContactArea:     m.ContactArea,

		SupervisorName:  m.SupervisorName,
		SupervisorArea:  m.SupervisorArea,
		SupervisorEmail: m.SupervisorEmail,
		SupervisorPhone: m.SupervisorPhone,

		ProjectName:         m.ProjectName,
		ProjectStart:        m.ProjectStart.UTC(),
		ProjectEnd:          m.ProjectEnd.UTC(),
		ProblemContext:      m.ProblemContext,
		ProblemDescription:  m.ProblemDescription,
		GeneralObjective:    m.GeneralObjective,
		SpecificObjectives:  m.SpecificObjectives,
		MainActivities:      m.MainActivities,
		PlannedDeliverables: m.PlannedDeliverables,
		Technologies:        m.Technologies,

		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type activeConvocatoriaModel struct {
	ID       int64     `gorm:"column:id;primaryKey"`
	UUID     string    `gorm:"column:uuid"`
	Deadline time.Time `gorm:"column:fecha_limite"`
}

func (activeConvocatoriaModel) TableName() string {
	return "convocatorias"
}

type convocatoriaTypeRow struct {
	ConvocatoriaID int64  `gorm:"column:convocatoria_id"`
	TypeName       string `gorm:"column:type_name"`
}

func (convocatoriaTypeRow) TableName() string {
	return "convocatoria_internship_types"
}

type convocatoriaTutorRow struct {
	ConvocatoriaID int64  `gorm:"column:convocatoria_id"`
	TutorID        int64  `gorm:"column:tutor_id"`
	TutorName      string `gorm:"column:tutor_name"`
	TutorEmail     string `gorm:"column:tutor_email"`
}

func (convocatoriaTutorRow) TableName() string {
	return "convocatoria_tutors"
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.ProposalRepository = (*Repository)(nil)
var _ ports.ConvocatoriaGateway = (*Repository)(nil)
