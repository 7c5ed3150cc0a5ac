package errors

import "errors"

var (
	ErrInvalidProposalInput   = errors.New("proposal input is invalid")
	ErrInvalidEmail           = errors.New("email address is malformed")
	ErrInvalidProjectDates    = errors.New("project dates are invalid")
	ErrProjectTooShort        = errors.New("project must span at least 30 days")
	ErrProposalNotFound       = errors.New("proposal not found")
	ErrProposalExists         = errors.New("student already has a proposal in this convocatoria")
	ErrProposalLocked         = errors.New("proposal can no longer be modified")
	ErrNoActiveConvocatoria   = errors.New("no active convocatoria")
	ErrTypeNotOffered         = errors.New("internship type is not offered by the active convocatoria")
	ErrTutorNotInConvocatoria = errors.New("tutor is not available in the active convocatoria")
	ErrInvalidStatus          = errors.New("proposal status is not recognized")
)
