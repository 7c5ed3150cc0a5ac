package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	evaluationerrors "pasantias/contexts/internship-program/evaluation-engine/domain/errors"
	evaluationhttp "pasantias/contexts/internship-program/evaluation-engine/transport/http"
)

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeEvaluationError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	var req evaluationhttp.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEvaluationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.evaluation.Handler.CreateCommentHandler(r.Context(), principal.UserID, req)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleEditComment(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeEvaluationError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	var req evaluationhttp.EditCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEvaluationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.evaluation.Handler.EditCommentHandler(r.Context(), r.PathValue("comment_id"), principal.UserID, req)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeEvaluationError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	if err := s.evaluation.Handler.DeleteCommentHandler(r.Context(), r.PathValue("comment_id"), principal.UserID); err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProposalComments(w http.ResponseWriter, r *http.Request) {
	resp, err := s.evaluation.Handler.ProposalCommentsHandler(r.Context(), r.PathValue("proposal_id"))
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTutorComments(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeEvaluationError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	resp, err := s.evaluation.Handler.TutorCommentsHandler(r.Context(), principal.UserID)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveProposal(w http.ResponseWriter, r *http.Request) {
	s.handleWholeProposalVote(w, r, s.evaluation.Handler.ApproveProposalHandler)
}

func (s *Server) handleRejectProposal(w http.ResponseWriter, r *http.Request) {
	s.handleWholeProposalVote(w, r, s.evaluation.Handler.RejectProposalHandler)
}

func (s *Server) handleRequestUpdate(w http.ResponseWriter, r *http.Request) {
	s.handleWholeProposalVote(w, r, s.evaluation.Handler.RequestUpdateHandler)
}

func (s *Server) handleWholeProposalVote(
	w http.ResponseWriter,
	r *http.Request,
	handler func(
		ctx context.Context,
		tutorID int64,
		tutorName string,
		tutorEmail string,
		req evaluationhttp.WholeProposalVoteRequest,
	) (evaluationhttp.VoteOutcomeResponse, error),
) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeEvaluationError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	req := evaluationhttp.WholeProposalVoteRequest{
		ProposalRef: r.PathValue("proposal_id"),
	}
	if r.Body != nil && r.ContentLength != 0 {
		var body evaluationhttp.WholeProposalVoteRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeEvaluationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
			return
		}
		req.Text = body.Text
	}

	resp, err := handler(r.Context(), principal.UserID, principal.Name, principal.Email, req)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleTutorFinalVote(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeEvaluationError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	resp, err := s.evaluation.Handler.TutorFinalVoteHandler(r.Context(), r.PathValue("proposal_id"), principal.UserID)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVoteStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.evaluation.Handler.VoteStatsHandler(r.Context(), r.PathValue("proposal_id"))
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSyncProposalStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := s.resolvePrincipal(r); err != nil {
		writeEvaluationError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	proposalID, err := strconv.ParseInt(r.PathValue("proposal_id"), 10, 64)
	if err != nil {
		writeEvaluationError(w, http.StatusBadRequest, "invalid_proposal_id", "proposal_id must be an integer")
		return
	}

	resp, err := s.evaluation.Handler.SyncStatusHandler(r.Context(), proposalID)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeEvaluationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, evaluationerrors.ErrProposalNotFound):
		writeEvaluationError(w, http.StatusNotFound, "proposal_not_found", err.Error())
	case errors.Is(err, evaluationerrors.ErrCommentNotFound):
		writeEvaluationError(w, http.StatusNotFound, "comment_not_found", err.Error())
	case errors.Is(err, evaluationerrors.ErrEvaluationClosed):
		writeEvaluationError(w, http.StatusConflict, "evaluation_closed", err.Error())
	case errors.Is(err, evaluationerrors.ErrDuplicateSectionComment):
		writeEvaluationError(w, http.StatusConflict, "duplicate_section_comment", err.Error())
	case errors.Is(err, evaluationerrors.ErrFinalVoteAlreadyCast):
		writeEvaluationError(w, http.StatusConflict, "final_vote_already_cast", err.Error())
	case errors.Is(err, evaluationerrors.ErrSectionCommentsExist):
		writeEvaluationError(w, http.StatusConflict, "section_comments_exist", err.Error())
	case errors.Is(err, evaluationerrors.ErrVoteConflict):
		writeEvaluationError(w, http.StatusConflict, "vote_conflict", err.Error())
	case errors.Is(err, evaluationerrors.ErrCommentDeletionForbidden):
		writeEvaluationError(w, http.StatusMethodNotAllowed, "comment_deletion_forbidden", err.Error())
	case errors.Is(err, evaluationerrors.ErrNotCommentAuthor):
		writeEvaluationError(w, http.StatusForbidden, "not_comment_author", err.Error())
	case errors.Is(err, evaluationerrors.ErrFinalCommentImmutable):
		writeEvaluationError(w, http.StatusConflict, "final_comment_immutable", err.Error())
	case errors.Is(err, evaluationerrors.ErrConvocatoriaExpired):
		writeEvaluationError(w, http.StatusConflict, "convocatoria_expired", err.Error())
	case errors.Is(err, evaluationerrors.ErrFinalVoteViaComment):
		writeEvaluationError(w, http.StatusUnprocessableEntity, "final_vote_via_comment", err.Error())
	case errors.Is(err, evaluationerrors.ErrCommentTooShort):
		writeEvaluationError(w, http.StatusUnprocessableEntity, "comment_too_short", err.Error())
	case errors.Is(err, evaluationerrors.ErrInvalidVoteStatus):
		writeEvaluationError(w, http.StatusUnprocessableEntity, "invalid_vote_status", err.Error())
	case errors.Is(err, evaluationerrors.ErrInvalidVoteInput):
		writeEvaluationError(w, http.StatusBadRequest, "invalid_vote_input", err.Error())
	default:
		writeEvaluationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeEvaluationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, evaluationhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
