package entities

import (
	"strings"
	"time"
)

// DateLayout is the wire format for convocatoria deadlines.
const DateLayout = "2006-01-02"

// MaxInternshipTypes bounds how many internship types one call may offer.
const MaxInternshipTypes = 5

// Internship type catalog. A convocatoria offers a subset of these.
const (
	TypeEstancia1 = "Estancia I"
	TypeEstancia2 = "Estancia II"
	TypeEstadia   = "Estadía"
	TypeEstadia1  = "Estadía 1"
	TypeEstadia2  = "Estadía 2"
)

var internshipTypeCatalog = map[string]struct{}{
	TypeEstancia1: {},
	TypeEstancia2: {},
	TypeEstadia:   {},
	TypeEstadia1:  {},
	TypeEstadia2:  {},
}

// ValidInternshipType reports whether the value is part of the fixed catalog.
func ValidInternshipType(value string) bool {
	_, ok := internshipTypeCatalog[strings.TrimSpace(value)]
	return ok
}

// NormalizeInternshipTypes trims and deduplicates while preserving order.
func NormalizeInternshipTypes(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// Tutor is the roster snapshot a convocatoria carries: the professors students
// may pick as internal tutor while the call is open.
type Tutor struct {
	ID    int64
	Name  string
	Email string
}

type Convocatoria struct {
	ID              int64
	UUID            string
	Name            string
	Description     string
	Deadline        time.Time
	InternshipTypes []string
	AvailableTutors []Tutor
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Expired reports whether the call's deadline has passed at the given instant.
func (c Convocatoria) Expired(now time.Time) bool {
	return now.After(c.Deadline)
}

// OffersType reports whether the call offers the given internship type.
func (c Convocatoria) OffersType(internshipType string) bool {
	trimmed := strings.TrimSpace(internshipType)
	for _, t := range c.InternshipTypes {
		if t == trimmed {
			return true
		}
	}
	return false
}

// HasTutor reports whether the tutor belongs to the call's roster.
func (c Convocatoria) HasTutor(tutorID int64) bool {
	for _, t := range c.AvailableTutors {
		if t.ID == tutorID {
			return true
		}
	}
	return false
}

// EndOfDayUTC clamps a calendar date to 23:59:59.999 UTC so a deadline covers
// the whole of its last day.
func EndOfDayUTC(day time.Time) time.Time {
	day = day.UTC()
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

// EarliestDeadline is the first calendar day a new call may close on: tomorrow
// relative to the given instant.
func EarliestDeadline(now time.Time) time.Time {
	now = now.UTC()
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)
}
