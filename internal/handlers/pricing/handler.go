package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/pricing/model/dto"
	"resthouse/internal/domains/pricing/service"
	"resthouse/shared/constant"
	"resthouse/shared/validator"
	"resthouse/transport/http/response"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/pricing", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRates)
		routerGroup.Put("/", handler.UpdateRates)
	})
}

// GetRates returns the per-role nightly rates currently in effect.
// @Summary Get pricing rates
// @Description Retrieve the per-role nightly rates currently in effect.
// @Tags Pricing
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RatesResponse] "Current rates"
// @Failure 500 {object} response.Error
// @Router /v1/admin/pricing [get]
// @Security BearerAuth
func (handler *Handler) GetRates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	rates, err := handler.service.GetRates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rates")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rates retrieved successfully")

	response.WithJSON(writer, http.StatusOK, rates)
}

// UpdateRates changes the per-role nightly rates. Existing bookings keep the
// quote they were priced with.
// @Summary Update pricing rates
// @Description Change the per-role nightly rates. Existing bookings keep their quoted price.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.UpdateRatesRequest true "Update Rates Request"
// @Success 200 {object} response.Message "Rates updated"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/pricing [put]
// @Security BearerAuth
func (handler *Handler) UpdateRates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRates")
	defer scope.End()

	req := dto.UpdateRatesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateRates(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rates")

		response.WithError(writer, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rates updated by " + admin)

	response.WithMessage(writer, http.StatusOK, "Rates updated successfully")
}
