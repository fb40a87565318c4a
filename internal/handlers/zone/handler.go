package zone

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/zone/model/dto"
	"resthouse/internal/domains/zone/service"
	"resthouse/shared/constant"
	"resthouse/shared/validator"
	"resthouse/transport/http/response"
)

type Handler struct {
	service service.Zone
	otel    otel.Otel
}

func New(service service.Zone, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/zones", handler.GetZones)

	router.Route("/admin/zones", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateZone)
		routerGroup.Put("/{id}", handler.UpdateZone)
		routerGroup.Delete("/{id}", handler.DeleteZone)
	})
}

// GetZones lists all zones sorted by name.
// @Summary Get all zones
// @Description Retrieve every zone sorted by name.
// @Tags Zone
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetZonesResponse] "List of zones"
// @Failure 500 {object} response.Error
// @Router /v1/zones [get]
func (handler *Handler) GetZones(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetZones")
	defer scope.End()

	zones, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get zones")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Zones retrieved successfully")

	response.WithJSON(writer, http.StatusOK, zones)
}

// CreateZone adds a new zone.
// @Summary Create a zone
// @Description Add a new zone. Names are unique.
// @Tags Zone
// @Accept json
// @Produce json
// @Param request body dto.CreateZoneRequest true "Create Zone Request"
// @Success 201 {object} response.Message "Zone created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/zones [post]
// @Security BearerAuth
func (handler *Handler) CreateZone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateZone")
	defer scope.End()

	req := dto.CreateZoneRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create zone")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Zone created successfully")

	response.WithMessage(writer, http.StatusCreated, "Zone created successfully")
}

// UpdateZone renames a zone.
// @Summary Update a zone
// @Description Rename a zone. Names stay unique.
// @Tags Zone
// @Accept json
// @Produce json
// @Param id path string true "Zone ID"
// @Param request body dto.UpdateZoneRequest true "Update Zone Request"
// @Success 200 {object} response.Message "Zone updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/zones/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateZone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateZone")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateZoneRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update zone")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Zone updated successfully")

	response.WithMessage(writer, http.StatusOK, "Zone updated successfully")
}

// DeleteZone removes a zone along with every property assigned to it.
// @Summary Delete a zone
// @Description Delete a zone along with every property assigned to it.
// @Tags Zone
// @Accept json
// @Produce json
// @Param id path string true "Zone ID"
// @Success 200 {object} response.Message "Zone deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/zones/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteZone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteZone")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete zone")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Zone deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Zone deleted successfully")
}
