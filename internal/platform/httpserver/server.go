package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	convocatoriaservice "pasantias/contexts/internship-program/convocatoria-service"
	evaluationengine "pasantias/contexts/internship-program/evaluation-engine"
	proposalservice "pasantias/contexts/internship-program/proposal-service"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	jwtSecret     string
	convocatorias convocatoriaservice.Module
	proposals     proposalservice.Module
	evaluation    evaluationengine.Module
}

func New(
	convocatorias convocatoriaservice.Module,
	proposals proposalservice.Module,
	evaluation evaluationengine.Module,
	jwtSecret string,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		jwtSecret:     jwtSecret,
		convocatorias: convocatorias,
		proposals:     proposals,
		evaluation:    evaluation,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /convocatorias", s.handleCreateConvocatoria)
	s.mux.HandleFunc("GET /convocatorias", s.handleListConvocatorias)
	s.mux.HandleFunc("GET /convocatorias/activa", s.handleGetActiveConvocatoria)
	s.mux.HandleFunc("GET /convocatorias/activa/estado", s.handleHasActiveConvocatoria)
	s.mux.HandleFunc("GET /convocatorias/activa/tutores", s.handleListAvailableTutors)
	s.mux.HandleFunc("GET /convocatorias/{convocatoria_id}", s.handleGetConvocatoria)
	s.mux.HandleFunc("PATCH /convocatorias/{convocatoria_id}", s.handleUpdateConvocatoria)

	s.mux.HandleFunc("GET /propuestas/validacion", s.handleValidateNewProposal)
	s.mux.HandleFunc("POST /propuestas", s.handleCreateProposal)
	s.mux.HandleFunc("GET /propuestas", s.handleListProposals)
	s.mux.HandleFunc("GET /propuestas/propias", s.handleListOwnProposals)
	s.mux.HandleFunc("GET /propuestas/{proposal_id}", s.handleGetProposal)
	s.mux.HandleFunc("PATCH /propuestas/{proposal_id}", s.handleUpdateProposal)
	s.mux.HandleFunc("PUT /propuestas/{proposal_id}/estado", s.handleSetProposalStatus)

	s.mux.HandleFunc("POST /comentarios", s.handleCreateComment)
	s.mux.HandleFunc("PATCH /comentarios/{comment_id}", s.handleEditComment)
	s.mux.HandleFunc("DELETE /comentarios/{comment_id}", s.handleDeleteComment)
	s.mux.HandleFunc("GET /propuestas/{proposal_id}/comentarios", s.handleProposalComments)
	s.mux.HandleFunc("GET /tutores/comentarios", s.handleTutorComments)
	s.mux.HandleFunc("POST /propuestas/{proposal_id}/aprobar", s.handleApproveProposal)
	s.mux.HandleFunc("POST /propuestas/{proposal_id}/rechazar", s.handleRejectProposal)
	s.mux.HandleFunc("POST /propuestas/{proposal_id}/solicitar-actualizacion", s.handleRequestUpdate)
	s.mux.HandleFunc("GET /propuestas/{proposal_id}/voto-final", s.handleTutorFinalVote)
	s.mux.HandleFunc("GET /propuestas/{proposal_id}/votos", s.handleVoteStats)
	s.mux.HandleFunc("POST /propuestas/{proposal_id}/sincronizar-estado", s.handleSyncProposalStatus)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
