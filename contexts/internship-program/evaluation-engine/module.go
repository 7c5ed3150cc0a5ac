package evaluationengine

import (
	"log/slog"

	httpadapter "pasantias/contexts/internship-program/evaluation-engine/adapters/http"
	"pasantias/contexts/internship-program/evaluation-engine/adapters/memory"
	"pasantias/contexts/internship-program/evaluation-engine/application/commands"
	"pasantias/contexts/internship-program/evaluation-engine/application/queries"
	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
	"pasantias/contexts/internship-program/evaluation-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Sync    *commands.SyncUseCase
	Store   *memory.Store
}

type Dependencies struct {
	Comments      ports.CommentRepository
	Proposals     ports.ProposalGateway
	Convocatorias ports.ConvocatoriaGateway
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	syncUseCase := commands.NewSyncUseCase(deps.Comments, deps.Proposals, deps.Logger)
	voteUseCase := commands.VoteUseCase{
		Comments:      deps.Comments,
		Proposals:     deps.Proposals,
		Convocatorias: deps.Convocatorias,
		Sync:          syncUseCase,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		Logger:        deps.Logger,
	}
	statsUseCase := queries.StatsUseCase{
		Comments:  deps.Comments,
		Proposals: deps.Proposals,
	}
	return Module{
		Handler: httpadapter.Handler{
			Votes:  voteUseCase,
			Sync:   syncUseCase,
			Stats:  statsUseCase,
			Logger: deps.Logger,
		},
		Sync: syncUseCase,
	}
}

func NewInMemoryModule(seed []entities.Comment, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Comments:      store,
		Proposals:     store,
		Convocatorias: store,
		Clock:         store,
		IDGen:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
