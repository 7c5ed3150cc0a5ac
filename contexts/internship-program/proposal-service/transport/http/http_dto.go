package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateProposalRequest struct {
	TutorID        int64  `json:"tutor_id"`
	InternshipType string `json:"internship_type"`

	CompanyShortName string `json:"company_short_name"`
	CompanyLegalName string `json:"company_legal_name"`
	CompanyTaxID     string `json:"company_tax_id,omitempty"`
	CompanyWebsite   string `json:"company_website,omitempty"`
	CompanyLinkedIn  string `json:"company_linkedin,omitempty"`

	AddressState          string `json:"address_state,omitempty"`
	AddressMunicipality   string `json:"address_municipality,omitempty"`
	AddressSettlementType string `json:"address_settlement_type,omitempty"`
	AddressSettlementName string `json:"address_settlement_name,omitempty"`
	AddressStreetType     string `json:"address_street_type,omitempty"`
	AddressStreetName     string `json:"address_street_name,omitempty"`
	AddressExteriorNumber string `json:"address_exterior_number,omitempty"`
	AddressInteriorNumber string `json:"address_interior_number,omitempty"`
	AddressPostalCode     string `json:"address_postal_code,omitempty"`

	ContactName     string `json:"contact_name"`
	ContactPosition string `json:"contact_position,omitempty"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	ContactArea     string `json:"contact_area,omitempty"`

	SupervisorName  string `json:"supervisor_name"`
	SupervisorArea  string `json:"supervisor_area,omitempty"`
	SupervisorEmail string `json:"supervisor_email"`
	SupervisorPhone string `json:"supervisor_phone,omitempty"`

	ProjectName         string `json:"project_name"`
	ProjectStart        string `json:"project_start"`
	ProjectEnd          string `json:"project_end"`
	ProblemContext      string `json:"problem_context,omitempty"`
	ProblemDescription  string `json:"problem_description,omitempty"`
	GeneralObjective    string `json:"general_objective"`
	SpecificObjectives  string `json:"specific_objectives,omitempty"`
	MainActivities      string `json:"main_activities,omitempty"`
	PlannedDeliverables string `json:"planned_deliverables,omitempty"`
	Technologies        string `json:"technologies,omitempty"`
}

type UpdateProposalRequest struct {
	TutorID        *int64  `json:"tutor_id,omitempty"`
	InternshipType *string `json:"internship_type,omitempty"`

	CompanyShortName *string `json:"company_short_name,omitempty"`
	CompanyLegalName *string `json:"company_legal_name,omitempty"`
	CompanyTaxID     *string `json:"company_tax_id,omitempty"`
	CompanyWebsite   *string `json:"company_website,omitempty"`
	CompanyLinkedIn  *string `json:"company_linkedin,omitempty"`

	AddressState          *string `json:"address_state,omitempty"`
	AddressMunicipality   *string `json:"address_municipality,omitempty"`
	AddressSettlementType *string `json:"address_settlement_type,omitempty"`
	AddressSettlementName *string `json:"address_settlement_name,omitempty"`
	AddressStreetType     *string `json:"address_street_type,omitempty"`
	AddressStreetName     *string `json:"address_street_name,omitempty"`
	AddressExteriorNumber *string `json:"address_exterior_number,omitempty"`
	AddressInteriorNumber *string `json:"address_interior_number,omitempty"`
	AddressPostalCode     *string `json:"address_postal_code,omitempty"`

	ContactName     *string `json:"contact_name,omitempty"`
	ContactPosition *string `json:"contact_position,omitempty"`
	ContactEmail    *string `json:"contact_email,omitempty"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	ContactArea     *string `json:"contact_area,omitempty"`

	SupervisorName  *string `json:"supervisor_name,omitempty"`
	SupervisorArea  *string `json:"supervisor_area,omitempty"`
	SupervisorEmail *string `json:"supervisor_email,omitempty"`
	SupervisorPhone *string `json:"supervisor_phone,omitempty"`

	ProjectName         *string `json:"project_name,omitempty"`
	ProjectStart        *string `json:"project_start,omitempty"`
	ProjectEnd          *string `json:"project_end,omitempty"`
	ProblemContext      *string `json:"problem_context,omitempty"`
	ProblemDescription  *string `json:"problem_description,omitempty"`
	GeneralObjective    *string `json:"general_objective,omitempty"`
	SpecificObjectives  *string `json:"specific_objectives,omitempty"`
	MainActivities      *string `json:"main_activities,omitempty"`
	PlannedDeliverables *string `json:"planned_deliverables,omitempty"`
	Technologies        *string `json:"technologies,omitempty"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type ProposalResponse struct {
	ID             int64  `json:"id"`
	UUID           string `json:"uuid"`
	StudentID      int64  `json:"student_id"`
	ConvocatoriaID int64  `json:"convocatoria_id"`
	Status         string `json:"status"`

	TutorID    int64  `json:"tutor_id"`
	TutorName  string `json:"tutor_name"`
	TutorEmail string `json:"tutor_email"`

	InternshipType string `json:"internship_type"`

	CompanyShortName string `json:"company_short_name"`
	CompanyLegalName string `json:"company_legal_name"`
	CompanyTaxID     string `json:"company_tax_id,omitempty"`
	CompanyWebsite   string `json:"company_website,omitempty"`
	CompanyLinkedIn  string `json:"company_linkedin,omitempty"`

	AddressState          string `json:"address_state,omitempty"`
	AddressMunicipality   string `json:"address_municipality,omitempty"`
	AddressSettlementType string `json:"address_settlement_type,omitempty"`
	AddressSettlementName string `json:"address_settlement_name,omitempty"`
	AddressStreetType     string `json:"address_street_type,omitempty"`
	AddressStreetName     string `json:"address_street_name,omitempty"`
	AddressExteriorNumber string `json:"address_exterior_number,omitempty"`
	AddressInteriorNumber string `json:"address_interior_number,omitempty"`
	AddressPostalCode     string `json:"address_postal_code,omitempty"`

	ContactName     string `json:"contact_name"`
	ContactPosition string `json:"contact_position,omitempty"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	ContactArea     string `json:"contact_area,omitempty"`

	SupervisorName  string `json:"supervisor_name"`
	SupervisorArea  string `json:"supervisor_area,omitempty"`
	SupervisorEmail string `json:"supervisor_email"`
	SupervisorPhone string `json:"supervisor_phone,omitempty"`

	ProjectName         string `json:"project_name"`
	ProjectStart        string `json:"project_start"`
	ProjectEnd          string `json:"project_end"`
	ProblemContext      string `json:"problem_context,omitempty"`
	ProblemDescription  string `json:"problem_description,omitempty"`
	GeneralObjective    string `json:"general_objective"`
	SpecificObjectives  string `json:"specific_objectives,omitempty"`
	MainActivities      string `json:"main_activities,omitempty"`
	PlannedDeliverables string `json:"planned_deliverables,omitempty"`
	Technologies        string `json:"technologies,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ProposalListResponse struct {
	Items []ProposalResponse `json:"items"`
}

type ValidationResponse struct {
	CanSubmit bool `json:"can_submit"`
}
