package entities

import (
	"regexp"
	"strings"
	"time"
)

// ProposalStatus is the lifecycle state computed by the evaluation engine and
// persisted on the proposal row.
type ProposalStatus string

const (
	StatusPending     ProposalStatus = "PENDIENTE"
	StatusApproved    ProposalStatus = "APROBADO"
	StatusRejected    ProposalStatus = "RECHAZADO"
	StatusNeedsUpdate ProposalStatus = "ACTUALIZAR"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusNeedsUpdate:
		return true
	}
	return false
}

// Locked reports whether the proposal reached a state that freezes edits.
func (s ProposalStatus) Locked() bool {
	return s == StatusApproved || s == StatusRejected
}

// MinProjectDuration is the shortest acceptable internship project.
const MinProjectDuration = 30 * 24 * time.Hour

// DateLayout is the wire format for project start/end dates.
const DateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the address shape used for contact and supervisor fields.
func ValidEmail(address string) bool {
	return emailPattern.MatchString(strings.TrimSpace(address))
}

// Proposal is the student's internship project submission. The field bag is
// intentionally flat: it mirrors the registration form one to one.
type Proposal struct {
	ID             int64
	UUID           string
	StudentID      int64
	ConvocatoriaID int64
	Status         ProposalStatus
	Active         bool

	// Internal tutor snapshot taken from the convocatoria roster.
	TutorID    int64
	TutorName  string
	TutorEmail string

	InternshipType string

	// Company identification.
	CompanyShortName string
	CompanyLegalName string
	CompanyTaxID     string
	CompanyWebsite   string
	CompanyLinkedIn  string

	// Company address.
	AddressState          string
	AddressMunicipality   string
	AddressSettlementType string
	AddressSettlementName string
	AddressStreetType     string
	AddressStreetName     string
	AddressExteriorNumber string
	AddressInteriorNumber string
	AddressPostalCode     string

	// Company contact handling the internship paperwork.
	ContactName     string
	ContactPosition string
	ContactEmail    string
	ContactPhone    string
	ContactArea     string

	// Project supervisor at the company.
	SupervisorName  string
	SupervisorArea  string
	SupervisorEmail string
	SupervisorPhone string

	// Project description.
	ProjectName         string
	ProjectStart        time.Time
	ProjectEnd          time.Time
	ProblemContext      string
	ProblemDescription  string
	GeneralObjective    string
	SpecificObjectives  string
	MainActivities      string
	PlannedDeliverables string
	Technologies        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Editable reports whether the proposal may still be modified by the student.
func (p Proposal) Editable() bool {
	return p.Active && !p.Status.Locked()
}
