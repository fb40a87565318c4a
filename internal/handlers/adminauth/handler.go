package adminauth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/admin/model/dto"
	"resthouse/internal/domains/admin/service"
	"resthouse/shared/constant"
	"resthouse/shared/failure"
	"resthouse/shared/validator"
	"resthouse/transport/http/response"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/me", handler.Me)
	})
}

// Register creates an admin account. The first account bootstraps the
// console; afterwards only a superadmin may create more.
// @Summary Register an admin account
// @Description Create an admin account. The first account bootstraps the console; afterwards only a superadmin may create more.
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterAdminRequest true "Register Admin Request"
// @Success 201 {object} response.Message "Admin account created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/auth/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterAdmin")
	defer scope.End()

	req := dto.RegisterAdminRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register admin")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin registered successfully")

	response.WithMessage(writer, http.StatusCreated, "Admin account created")
}

// Login authenticates an admin account.
// @Summary Admin login
// @Description Authenticate an admin account and receive a JWT token pair.
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginAdminRequest true "Admin Login Request"
// @Success 200 {object} response.Data[dto.LoginAdminResponse] "Token pair and profile"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginAdmin")
	defer scope.End()

	req := dto.LoginAdminRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login admin")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin logged in successfully")

	response.WithJSON(writer, http.StatusOK, result)
}

// Me returns the authenticated admin's profile.
// @Summary Get my admin profile
// @Description Retrieve the authenticated admin's profile.
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.AdminResponse] "Admin profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminMe")
	defer scope.End()

	adminID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || adminID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)
		log.Error().Msg("failed to get admin ID from context")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Me(ctx, adminID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, result)
}
