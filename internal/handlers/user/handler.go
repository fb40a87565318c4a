package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/user/service"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/transport/http/response"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/users", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Get("/{id}", handler.GetUserByID)
		routerGroup.Delete("/{id}", handler.DeleteUser)
	})

	router.Get("/admin/pending-guests", handler.GetPendingGuests)

	router.Route("/admin/guests", func(routerGroup chi.Router) {
		routerGroup.Patch("/{id}/approve", handler.ApproveGuest)
		routerGroup.Patch("/{id}/reject", handler.RejectGuest)
	})
}

// GetUsers lists user accounts with pagination, search and the status/role
// tile filters.
// @Summary Get all users
// @Description Retrieve user accounts with pagination, search and status/role filters.
// @Tags User
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Search by name, email or employee ID"
// @Param filter query string false "Filter by status or role tile"
// @Success 200 {object} response.Data[dto.GetUsersResponse] "List of users with stats"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	search := request.URL.Query().Get(constant.RequestParamSearch)
	listFilter := request.URL.Query().Get(constant.RequestParamFilter)

	users, err := handler.service.GetAll(ctx, queryParams, search, listFilter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Users retrieved successfully")

	response.WithJSON(writer, http.StatusOK, users)
}

// GetUserByID returns a single user account.
// @Summary Get a user
// @Description Retrieve a single user account by its ID.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse] "User detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User retrieved successfully")

	response.WithJSON(writer, http.StatusOK, user)
}

// GetPendingGuests lists guest accounts awaiting approval.
// @Summary Get pending guests
// @Description Retrieve guest accounts awaiting approval.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetPendingGuestsResponse] "List of pending guests"
// @Failure 500 {object} response.Error
// @Router /v1/admin/pending-guests [get]
// @Security BearerAuth
func (handler *Handler) GetPendingGuests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingGuests")
	defer scope.End()

	guests, err := handler.service.PendingGuests(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending guests")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Pending guests retrieved successfully")

	response.WithJSON(writer, http.StatusOK, guests)
}

// ApproveGuest approves a pending guest account.
// @Summary Approve a guest
// @Description Approve a pending guest account so it can log in.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "Guest approved"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/guests/{id}/approve [patch]
// @Security BearerAuth
func (handler *Handler) ApproveGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveGuest")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.ApproveGuest(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve guest")

		response.WithError(writer, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest approved by " + admin)

	response.WithMessage(writer, http.StatusOK, "Guest approved")
}

// RejectGuest rejects a pending guest account.
// @Summary Reject a guest
// @Description Reject a pending guest account.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "Guest rejected"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/guests/{id}/reject [patch]
// @Security BearerAuth
func (handler *Handler) RejectGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectGuest")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.RejectGuest(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject guest")

		response.WithError(writer, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest rejected by " + admin)

	response.WithMessage(writer, http.StatusOK, "Guest rejected")
}

// DeleteUser removes a user account.
// @Summary Delete a user
// @Description Delete a user account. Booking history keeps its snapshots.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(writer, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("User deleted by " + admin)

	response.WithMessage(writer, http.StatusOK, "User deleted")
}
