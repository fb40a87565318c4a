package roster

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/roster/model"
	"resthouse/internal/domains/roster/model/dto"
	"resthouse/internal/domains/roster/service"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/validator"
	"resthouse/transport/http/response"
)

type Handler struct {
	service service.Roster
	otel    otel.Otel
}

func New(service service.Roster, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/employee-ids", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEmployeeIDs)
		routerGroup.Post("/", handler.AddEmployeeID)
		routerGroup.Post("/import", handler.ImportEmployeeIDs)
		routerGroup.Delete("/{employee_id}", handler.DeleteEmployeeID)
	})
}

// GetEmployeeIDs lists roster entries with pagination and search.
// @Summary Get authorized employee IDs
// @Description Retrieve the employee ID roster with pagination and search.
// @Tags Roster
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Search by employee ID"
// @Success 200 {object} response.Data[dto.GetEmployeeIDsResponse] "List of roster entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/employee-ids [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeIDs(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeIDs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	search := request.URL.Query().Get(constant.RequestParamSearch)

	entries, err := handler.service.GetAll(ctx, queryParams, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee IDs")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Employee IDs retrieved successfully")

	response.WithJSON(writer, http.StatusOK, entries)
}

// AddEmployeeID adds a single employee ID to the authorized roster.
// @Summary Add an employee ID
// @Description Add a single employee ID to the authorized roster.
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body dto.AddEmployeeIDRequest true "Add Employee ID Request"
// @Success 201 {object} response.Message "Employee ID added"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/employee-ids [post]
// @Security BearerAuth
func (handler *Handler) AddEmployeeID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddEmployeeID")
	defer scope.End()

	req := dto.AddEmployeeIDRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Add(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add employee ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Employee ID added")

	response.WithMessage(writer, http.StatusCreated, "Employee ID added")
}

// ImportEmployeeIDs bulk-adds employee IDs, skipping those already present.
// @Summary Import employee IDs
// @Description Bulk-add employee IDs, skipping duplicates, and report counts.
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body dto.ImportEmployeeIDsRequest true "Import Employee IDs Request"
// @Success 200 {object} response.Data[dto.ImportEmployeeIDsResponse] "Import counts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/employee-ids/import [post]
// @Security BearerAuth
func (handler *Handler) ImportEmployeeIDs(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportEmployeeIDs")
	defer scope.End()

	req := dto.ImportEmployeeIDsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Import(ctx, req.EmployeeIDs)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import employee IDs")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Employee IDs imported")

	response.WithJSON(writer, http.StatusOK, result)
}

// DeleteEmployeeID removes an employee ID from the roster. Accounts already
// registered with the ID are unaffected.
// @Summary Remove an employee ID
// @Description Remove an employee ID from the roster without touching existing accounts.
// @Tags Roster
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} response.Message "Employee ID removed"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/employee-ids/{employee_id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployeeID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployeeID")
	defer scope.End()

	employeeID := chi.URLParam(request, model.FieldEmployeeID)

	if err := handler.service.Delete(ctx, employeeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Employee ID removed")

	response.WithMessage(writer, http.StatusOK, "Employee ID removed")
}
