package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pasantias/contexts/internship-program/convocatoria-service/application/commands"
	"pasantias/contexts/internship-program/convocatoria-service/application/queries"
	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
	httptransport "pasantias/contexts/internship-program/convocatoria-service/transport/http"
)

type Handler struct {
	Create        commands.CreateUseCase
	Update        commands.UpdateUseCase
	Convocatorias queries.ConvocatoriaUseCase
	Logger        *slog.Logger
}

func (h Handler) CreateConvocatoriaHandler(
	ctx context.Context,
	req httptransport.CreateConvocatoriaRequest,
) (httptransport.ConvocatoriaResponse, error) {
	convocatoria, err := h.Create.CreateConvocatoria(ctx, commands.CreateConvocatoriaCommand{
		Name:            req.Name,
		Description:     req.Description,
		Deadline:        req.Deadline,
		InternshipTypes: req.InternshipTypes,
		TutorIDs:        req.TutorIDs,
	})
	if err != nil {
		return httptransport.ConvocatoriaResponse{}, err
	}
	return toConvocatoriaResponse(convocatoria), nil
}

func (h Handler) UpdateConvocatoriaHandler(
	ctx context.Context,
	uuid string,
	req httptransport.UpdateConvocatoriaRequest,
) (httptransport.ConvocatoriaResponse, error) {
	convocatoria, err := h.Update.UpdateConvocatoria(ctx, commands.UpdateConvocatoriaCommand{
		ConvocatoriaUUID: uuid,
		Name:             req.Name,
		Description:      req.Description,
		Deadline:         req.Deadline,
	})
	if err != nil {
		return httptransport.ConvocatoriaResponse{}, err
	}
	return toConvocatoriaResponse(convocatoria), nil
}

func (h Handler) GetConvocatoriaHandler(ctx context.Context, uuid string) (httptransport.ConvocatoriaResponse, error) {
	convocatoria, err := h.Convocatorias.Get(ctx, uuid)
	if err != nil {
		return httptransport.ConvocatoriaResponse{}, err
	}
	return toConvocatoriaResponse(convocatoria), nil
}

func (h Handler) GetActiveConvocatoriaHandler(ctx context.Context) (httptransport.ConvocatoriaResponse, error) {
	convocatoria, err := h.Convocatorias.GetActive(ctx)
	if err != nil {
		return httptransport.ConvocatoriaResponse{}, err
	}
	return toConvocatoriaResponse(convocatoria), nil
}

func (h Handler) HasActiveConvocatoriaHandler(ctx context.Context) (httptransport.HasActiveResponse, error) {
	active, err := h.Convocatorias.HasActive(ctx)
	if err != nil {
		return httptransport.HasActiveResponse{}, err
	}
	return httptransport.HasActiveResponse{Active: active}, nil
}

func (h Handler) ListConvocatoriasHandler(ctx context.Context) (httptransport.ConvocatoriaListResponse, error) {
	convocatorias, err := h.Convocatorias.List(ctx)
	if err != nil {
		return httptransport.ConvocatoriaListResponse{}, err
	}
	items := make([]httptransport.ConvocatoriaResponse, 0, len(convocatorias))
	for _, convocatoria := range convocatorias {
		items = append(items, toConvocatoriaResponse(convocatoria))
	}
	return httptransport.ConvocatoriaListResponse{Items: items}, nil
}

func (h Handler) ListAvailableTutorsHandler(ctx context.Context) (httptransport.TutorListResponse, error) {
	tutors, err := h.Convocatorias.ListAvailableTutors(ctx)
	if err != nil {
		return httptransport.TutorListResponse{}, err
	}
	return httptransport.TutorListResponse{Items: mapTutors(tutors)}, nil
}

func toConvocatoriaResponse(convocatoria entities.Convocatoria) httptransport.ConvocatoriaResponse {
	return httptransport.ConvocatoriaResponse{
		ID:              convocatoria.ID,
		UUID:            convocatoria.UUID,
		Name:            convocatoria.Name,
		Description:     convocatoria.Description,
		Deadline:        convocatoria.Deadline.UTC().Format(time.RFC3339),
		InternshipTypes: convocatoria.InternshipTypes,
		AvailableTutors: mapTutors(convocatoria.AvailableTutors),
		Active:          convocatoria.Active,
		CreatedAt:       convocatoria.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       convocatoria.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapTutors(tutors []entities.Tutor) []httptransport.TutorResponse {
	items := make([]httptransport.TutorResponse, 0, len(tutors))
	for _, tutor := range tutors {
		items = append(items, httptransport.TutorResponse{
			ID:    tutor.ID,
			Name:  tutor.Name,
			Email: tutor.Email,
		})
	}
	return items
}
