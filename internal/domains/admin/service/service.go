package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"resthouse/config"
	"resthouse/infras/jwt"
	"resthouse/infras/otel"
	"resthouse/internal/domains/admin/model"
	"resthouse/internal/domains/admin/model/dto"
	"resthouse/internal/domains/admin/repository"
	"resthouse/shared"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	"resthouse/shared/metrics"
	"resthouse/shared/password"
)

type Admin interface {
	Register(ctx context.Context, req dto.RegisterAdminRequest) error
	Login(ctx context.Context, req dto.LoginAdminRequest) (dto.LoginAdminResponse, error)
	Me(ctx context.Context, adminID string) (dto.AdminResponse, error)
}

type serviceImpl struct {
	repo       repository.Admin
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	metrics    *metrics.Metrics
}

func New(repo repository.Admin, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, metrics *metrics.Metrics) Admin {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		metrics:    metrics,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    model.TableName,
			},
		},
	}
}

// Register creates a console account. The very first admin bootstraps the
// console; after that only a superadmin may create more.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterAdminRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return fmt.Errorf("failed to count admins: %w", err)
	}

	createdBy := constant.SystemActor

	if total > 0 {
		actorRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if actorRole != constant.AdminRoleSuper {
			return failure.Forbidden("only a superadmin can create admin accounts") //nolint:wrapcheck
		}

		if actor, ok := ctx.Value(constant.ContextKeyUserID).(string); ok {
			createdBy = actor
		}
	}

	exists, err := s.repo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(createdBy, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginAdminRequest) (res dto.LoginAdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == "" {
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginResultFailure).Inc()
		log.Warn().Msg("admin login attempt with unknown email")

		return res, failure.BadRequestFromString("invalid credentials") //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, admin.PasswordHash); err != nil {
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginResultFailure).Inc()
		log.Warn().Str("admin_id", admin.ID).Msg("admin login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid credentials") //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(admin.ID, admin.Email, admin.Role, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.metrics.LoginsTotal.WithLabelValues(metrics.LoginResultSuccess).Inc()

	res.FromTokenPair(tokenPair)
	res.Admin.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context, adminID string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminMe")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, shared.FilterByID(adminID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == "" {
		return res, failure.NotFound("admin not found") //nolint:wrapcheck
	}

	res.FromModel(admin)

	return res, nil
}
