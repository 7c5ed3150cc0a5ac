package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	proposalerrors "pasantias/contexts/internship-program/proposal-service/domain/errors"
	proposalhttp "pasantias/contexts/internship-program/proposal-service/transport/http"
)

func (s *Server) handleValidateNewProposal(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeProposalError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	resp, err := s.proposals.Handler.ValidateNewProposalHandler(r.Context(), principal.UserID)
	if err != nil {
		writeProposalDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeProposalError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	var req proposalhttp.CreateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProposalError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.proposals.Handler.CreateProposalHandler(r.Context(), principal.UserID, req)
	if err != nil {
		writeProposalDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListProposals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if status := query.Get("estado"); status != "" {
		resp, err := s.proposals.Handler.ListByStatusHandler(r.Context(), status)
		if err != nil {
			writeProposalDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}
	if raw := query.Get("convocatoria_id"); raw != "" {
		convocatoriaID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeProposalError(w, http.StatusBadRequest, "invalid_convocatoria_id", "convocatoria_id must be an integer")
			return
		}
		resp, err := s.proposals.Handler.ListByConvocatoriaHandler(r.Context(), convocatoriaID)
		if err != nil {
			writeProposalDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp, err := s.proposals.Handler.ListAllHandler(r.Context())
	if err != nil {
		writeProposalDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListOwnProposals(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeProposalError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	resp, err := s.proposals.Handler.ListByStudentHandler(r.Context(), principal.UserID)
	if err != nil {
		writeProposalDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProposal(w http.ResponseWriter, r *http.Request) {
	resp, err := s.proposals.Handler.GetProposalHandler(r.Context(), r.PathValue("proposal_id"))
	if err != nil {
		writeProposalDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateProposal(w http.ResponseWriter, r *http.Request) {
	principal, err := s.resolvePrincipal(r)
	if err != nil {
		writeProposalError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	var req proposalhttp.UpdateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProposalError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.proposals.Handler.UpdateProposalHandler(r.Context(), r.PathValue("proposal_id"), principal.UserID, req)
	if err != nil {
		writeProposalDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetProposalStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := s.resolvePrincipal(r); err != nil {
		writeProposalError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	var req proposalhttp.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProposalError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.proposals.Handler.SetStatusHandler(r.Context(), r.PathValue("proposal_id"), req)
	if err != nil {
		writeProposalDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeProposalDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, proposalerrors.ErrProposalNotFound):
		writeProposalError(w, http.StatusNotFound, "proposal_not_found", err.Error())
	case errors.Is(err, proposalerrors.ErrProposalExists):
		writeProposalError(w, http.StatusConflict, "proposal_exists", err.Error())
	case errors.Is(err, proposalerrors.ErrProposalLocked):
		writeProposalError(w, http.StatusConflict, "proposal_locked", err.Error())
	case errors.Is(err, proposalerrors.ErrNoActiveConvocatoria):
		writeProposalError(w, http.StatusConflict, "no_active_convocatoria", err.Error())
	case errors.Is(err, proposalerrors.ErrTypeNotOffered):
		writeProposalError(w, http.StatusUnprocessableEntity, "type_not_offered", err.Error())
	case errors.Is(err, proposalerrors.ErrTutorNotInConvocatoria):
		writeProposalError(w, http.StatusUnprocessableEntity, "tutor_not_in_convocatoria", err.Error())
	case errors.Is(err, proposalerrors.ErrInvalidEmail):
		writeProposalError(w, http.StatusUnprocessableEntity, "invalid_email", err.Error())
	case errors.Is(err, proposalerrors.ErrProjectTooShort):
		writeProposalError(w, http.StatusUnprocessableEntity, "project_too_short", err.Error())
	case errors.Is(err, proposalerrors.ErrInvalidProjectDates):
		writeProposalError(w, http.StatusUnprocessableEntity, "invalid_project_dates", err.Error())
	case errors.Is(err, proposalerrors.ErrInvalidStatus):
		writeProposalError(w, http.StatusBadRequest, "invalid_status", err.Error())
	case errors.Is(err, proposalerrors.ErrInvalidProposalInput):
		writeProposalError(w, http.StatusBadRequest, "invalid_proposal_input", err.Error())
	default:
		writeProposalError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeProposalError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, proposalhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
