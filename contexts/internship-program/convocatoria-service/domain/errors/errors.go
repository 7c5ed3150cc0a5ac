package errors

import "errors"

var (
	ErrInvalidConvocatoriaInput = errors.New("convocatoria input is invalid")
	ErrInvalidDeadline          = errors.New("deadline must be a valid YYYY-MM-DD date")
	ErrDeadlineTooSoon          = errors.New("deadline must be tomorrow or later")
	ErrInvalidInternshipType    = errors.New("internship type is not in the catalog")
	ErrTooManyInternshipTypes   = errors.New("too many internship types for one convocatoria")
	ErrNoInternshipTypes        = errors.New("at least one internship type is required")
	ErrNoTutors                 = errors.New("at least one available tutor is required")
	ErrUnknownTutor             = errors.New("tutor is not eligible for convocatorias")
	ErrActiveConvocatoriaExists = errors.New("an active convocatoria already exists")
	ErrConvocatoriaConflict     = errors.New("convocatoria conflicts with concurrent state")
	ErrConvocatoriaNotFound     = errors.New("convocatoria not found")
	ErrConvocatoriaClosed       = errors.New("convocatoria is no longer open for edits")
	ErrNoActiveConvocatoria     = errors.New("no active convocatoria")
)
