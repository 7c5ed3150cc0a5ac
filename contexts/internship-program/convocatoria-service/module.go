package convocatoriaservice

import (
	"log/slog"

	httpadapter "pasantias/contexts/internship-program/convocatoria-service/adapters/http"
	"pasantias/contexts/internship-program/convocatoria-service/adapters/memory"
	"pasantias/contexts/internship-program/convocatoria-service/application/commands"
	"pasantias/contexts/internship-program/convocatoria-service/application/queries"
	"pasantias/contexts/internship-program/convocatoria-service/application/workers"
	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
	"pasantias/contexts/internship-program/convocatoria-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Sweeper workers.ExpirationSweeper
	Store   *memory.Store
}

type Dependencies struct {
	Convocatorias ports.ConvocatoriaRepository
	Tutors        ports.TutorDirectory
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createUseCase := commands.CreateUseCase{
		Convocatorias: deps.Convocatorias,
		Tutors:        deps.Tutors,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		Logger:        deps.Logger,
	}
	updateUseCase := commands.UpdateUseCase{
		Convocatorias: deps.Convocatorias,
		Clock:         deps.Clock,
		Logger:        deps.Logger,
	}
	queryUseCase := queries.ConvocatoriaUseCase{
		Convocatorias: deps.Convocatorias,
	}
	return Module{
		Handler: httpadapter.Handler{
			Create:        createUseCase,
			Update:        updateUseCase,
			Convocatorias: queryUseCase,
			Logger:        deps.Logger,
		},
		Sweeper: workers.ExpirationSweeper{
			Convocatorias: deps.Convocatorias,
			Clock:         deps.Clock,
			Logger:        deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Convocatoria, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Convocatorias: store,
		Tutors:        store,
		Clock:         store,
		IDGen:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
