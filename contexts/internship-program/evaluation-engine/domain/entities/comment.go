package entities

import (
	"strings"
	"time"
)

type Vote string

const (
	VoteAccepted Vote = "ACEPTADO"
	VoteRejected Vote = "RECHAZADO"
	VoteUpdate   Vote = "ACTUALIZA"
)

func (v Vote) Valid() bool {
	switch v {
	case VoteAccepted, VoteRejected, VoteUpdate:
		return true
	default:
		return false
	}
}

// Final reports whether the vote is terminal for a tutor on a proposal.
func (v Vote) Final() bool {
	return v == VoteAccepted || v == VoteRejected
}

// Marker sections/subsections identifying whole-proposal votes. Any other
// (section, subsection) pair is a section-scoped comment.
const (
	SectionGeneralApproval   = "APROBACIÓN_GENERAL"
	SectionWholeProposal     = "PROPUESTA_COMPLETA"
	SubsectionWholeProposal  = "PROPUESTA_COMPLETA"
	SubsectionGeneralReject  = "RECHAZO_GENERAL"
	SubsectionGeneralUpdate  = "ACTUALIZACION_GENERAL"
)

type VoteScope string

const (
	ScopeGeneral VoteScope = "general"
	ScopeSection VoteScope = "section"
)

// VoteClass is the closed classification of a comment record. It is derived
// once at construction time, never re-derived from string comparisons during
// aggregation.
type VoteClass string

const (
	ClassGeneralApproval  VoteClass = "general_approval"
	ClassGeneralRejection VoteClass = "general_rejection"
	ClassGeneralUpdate    VoteClass = "general_update"
	ClassSectionUpdate    VoteClass = "section_update"
)

// ClassifyScope resolves whether a (section, subsection) pair addresses the
// whole proposal or a single section of its content.
func ClassifyScope(sectionName, subsectionName string) VoteScope {
	section := strings.TrimSpace(sectionName)
	subsection := strings.TrimSpace(subsectionName)

	generalSection := section == SectionGeneralApproval || section == SectionWholeProposal
	generalSubsection := subsection == SubsectionWholeProposal ||
		subsection == SubsectionGeneralReject ||
		subsection == SubsectionGeneralUpdate

	if generalSection && generalSubsection {
		return ScopeGeneral
	}
	return ScopeSection
}

type Comment struct {
	ID             int64
	UUID           string
	ProposalID     int64
	TutorID        int64
	SectionName    string
	SubsectionName string
	Text           string
	Vote           Vote
	Scope          VoteScope
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewComment builds a comment record with its scope classified once.
func NewComment(
	uuid string,
	proposalID int64,
	tutorID int64,
	sectionName string,
	subsectionName string,
	text string,
	vote Vote,
	now time.Time,
) Comment {
	return Comment{
		UUID:           strings.TrimSpace(uuid),
		ProposalID:     proposalID,
		TutorID:        tutorID,
		SectionName:    strings.TrimSpace(sectionName),
		SubsectionName: strings.TrimSpace(subsectionName),
		Text:           strings.TrimSpace(text),
		Vote:           vote,
		Scope:          ClassifyScope(sectionName, subsectionName),
		Active:         true,
		CreatedAt:      now.UTC(),
		UpdatedAt:      now.UTC(),
	}
}

// Class maps the (scope, vote) pair onto the closed vote taxonomy. Section
// scope only ever carries update requests through admission.
func (c Comment) Class() VoteClass {
	if c.Scope == ScopeGeneral {
		switch c.Vote {
		case VoteAccepted:
			return ClassGeneralApproval
		case VoteRejected:
			return ClassGeneralRejection
		default:
			return ClassGeneralUpdate
		}
	}
	return ClassSectionUpdate
}

// Editable reports whether the comment itself may still be modified by its
// author. Final votes are immutable once recorded.
func (c Comment) Editable() bool {
	return c.Vote == VoteUpdate
}
