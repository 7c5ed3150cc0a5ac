package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	convocatoriaerrors "pasantias/contexts/internship-program/convocatoria-service/domain/errors"
	convocatoriahttp "pasantias/contexts/internship-program/convocatoria-service/transport/http"
)

func (s *Server) handleCreateConvocatoria(w http.ResponseWriter, r *http.Request) {
	if _, err := s.resolvePrincipal(r); err != nil {
		writeConvocatoriaError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	var req convocatoriahttp.CreateConvocatoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeConvocatoriaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.convocatorias.Handler.CreateConvocatoriaHandler(r.Context(), req)
	if err != nil {
		writeConvocatoriaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateConvocatoria(w http.ResponseWriter, r *http.Request) {
	if _, err := s.resolvePrincipal(r); err != nil {
		writeConvocatoriaError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	var req convocatoriahttp.UpdateConvocatoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeConvocatoriaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.convocatorias.Handler.UpdateConvocatoriaHandler(r.Context(), r.PathValue("convocatoria_id"), req)
	if err != nil {
		writeConvocatoriaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListConvocatorias(w http.ResponseWriter, r *http.Request) {
	resp, err := s.convocatorias.Handler.ListConvocatoriasHandler(r.Context())
	if err != nil {
		writeConvocatoriaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetActiveConvocatoria(w http.ResponseWriter, r *http.Request) {
	resp, err := s.convocatorias.Handler.GetActiveConvocatoriaHandler(r.Context())
	if err != nil {
		writeConvocatoriaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHasActiveConvocatoria(w http.ResponseWriter, r *http.Request) {
	resp, err := s.convocatorias.Handler.HasActiveConvocatoriaHandler(r.Context())
	if err != nil {
		writeConvocatoriaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAvailableTutors(w http.ResponseWriter, r *http.Request) {
	resp, err := s.convocatorias.Handler.ListAvailableTutorsHandler(r.Context())
	if err != nil {
		writeConvocatoriaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetConvocatoria(w http.ResponseWriter, r *http.Request) {
	resp, err := s.convocatorias.Handler.GetConvocatoriaHandler(r.Context(), r.PathValue("convocatoria_id"))
	if err != nil {
		writeConvocatoriaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeConvocatoriaDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, convocatoriaerrors.ErrConvocatoriaNotFound):
		writeConvocatoriaError(w, http.StatusNotFound, "convocatoria_not_found", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrNoActiveConvocatoria):
		writeConvocatoriaError(w, http.StatusNotFound, "no_active_convocatoria", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrActiveConvocatoriaExists):
		writeConvocatoriaError(w, http.StatusConflict, "active_convocatoria_exists", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrConvocatoriaClosed):
		writeConvocatoriaError(w, http.StatusConflict, "convocatoria_closed", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrConvocatoriaConflict):
		writeConvocatoriaError(w, http.StatusConflict, "convocatoria_conflict", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrDeadlineTooSoon):
		writeConvocatoriaError(w, http.StatusUnprocessableEntity, "deadline_too_soon", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrInvalidDeadline):
		writeConvocatoriaError(w, http.StatusBadRequest, "invalid_deadline", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrInvalidInternshipType):
		writeConvocatoriaError(w, http.StatusUnprocessableEntity, "invalid_internship_type", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrTooManyInternshipTypes):
		writeConvocatoriaError(w, http.StatusUnprocessableEntity, "too_many_internship_types", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrNoInternshipTypes):
		writeConvocatoriaError(w, http.StatusBadRequest, "no_internship_types", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrNoTutors):
		writeConvocatoriaError(w, http.StatusBadRequest, "no_tutors", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrUnknownTutor):
		writeConvocatoriaError(w, http.StatusUnprocessableEntity, "unknown_tutor", err.Error())
	case errors.Is(err, convocatoriaerrors.ErrInvalidConvocatoriaInput):
		writeConvocatoriaError(w, http.StatusBadRequest, "invalid_convocatoria_input", err.Error())
	default:
		writeConvocatoriaError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeConvocatoriaError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, convocatoriahttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
