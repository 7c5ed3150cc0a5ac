package proposalservice

import (
	"log/slog"

	httpadapter "pasantias/contexts/internship-program/proposal-service/adapters/http"
	"pasantias/contexts/internship-program/proposal-service/adapters/memory"
	"pasantias/contexts/internship-program/proposal-service/application/commands"
	"pasantias/contexts/internship-program/proposal-service/application/queries"
	"pasantias/contexts/internship-program/proposal-service/domain/entities"
	"pasantias/contexts/internship-program/proposal-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Proposals     ports.ProposalRepository
	Convocatorias ports.ConvocatoriaGateway
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	writeUseCase := commands.ProposalUseCase{
		Proposals:     deps.Proposals,
		Convocatorias: deps.Convocatorias,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		Logger:        deps.Logger,
	}
	readUseCase := queries.ProposalUseCase{
		Proposals: deps.Proposals,
	}
	return Module{
		Handler: httpadapter.Handler{
			Proposals: writeUseCase,
			Reads:     readUseCase,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Proposal, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Proposals:     store,
		Convocatorias: store,
		Clock:         store,
		IDGen:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
