package errors

import "errors"

var (
	ErrInvalidVoteInput         = errors.New("invalid vote input")
	ErrInvalidVoteStatus        = errors.New("vote status must be ACEPTADO, RECHAZADO or ACTUALIZA")
	ErrFinalVoteViaComment      = errors.New("final votes must go through the whole-proposal approve/reject operations")
	ErrCommentTooShort          = errors.New("comment text must be at least 10 characters long")
	ErrCommentNotFound          = errors.New("comment not found")
	ErrProposalNotFound         = errors.New("proposal not found")
	ErrEvaluationClosed         = errors.New("proposal evaluation is closed")
	ErrDuplicateSectionComment  = errors.New("tutor already commented on this section")
	ErrFinalVoteAlreadyCast     = errors.New("tutor already cast a final vote on this proposal")
	ErrSectionCommentsExist     = errors.New("tutor already has section comments on this proposal")
	ErrNotCommentAuthor         = errors.New("comment belongs to another tutor")
	ErrFinalCommentImmutable    = errors.New("comments carrying a final vote cannot be edited")
	ErrConvocatoriaExpired      = errors.New("proposal belongs to an expired convocatoria")
	ErrCommentDeletionForbidden = errors.New("comments cannot be deleted once created")
	ErrVoteConflict             = errors.New("vote conflict")
)
