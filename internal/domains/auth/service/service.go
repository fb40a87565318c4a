package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"resthouse/config"
	"resthouse/infras/jwt"
	"resthouse/infras/otel"
	"resthouse/infras/s3"
	"resthouse/internal/domains/auth/model/dto"
	rosterService "resthouse/internal/domains/roster/service"
	userModel "resthouse/internal/domains/user/model"
	userRepo "resthouse/internal/domains/user/repository"
	"resthouse/shared"
	"resthouse/shared/base64"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	"resthouse/shared/metrics"
	"resthouse/shared/password"
)

const idCardDirectory = "id-cards"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	RegisterGuest(ctx context.Context, req dto.RegisterGuestRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Me(ctx context.Context, userID string) (dto.UserResponse, error)
	CheckEmployee(ctx context.Context, employeeID string) (dto.CheckEmployeeResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	roster     rosterService.Roster
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	s3         s3.S3
	metrics    *metrics.Metrics
}

func New(userRepo userRepo.User, roster rosterService.Roster, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, s3 s3.S3, metrics *metrics.Metrics) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		roster:     roster,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		s3:         s3,
		metrics:    metrics,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    userModel.TableName,
			},
		},
	}
}

// identityFilter matches on email or employee ID, either of which must be
// unique across accounts.
func identityFilter(email, employeeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldEmployeeID,
				ArgName:  "identity_employee_id",
				Operator: gDto.FilterOperatorEq,
				Value:    strings.TrimSpace(employeeID),
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	employeeID := strings.TrimSpace(req.EmployeeID)

	authorized, err := s.roster.Exists(ctx, employeeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee roster")

		return fmt.Errorf("failed to check employee roster: %w", err)
	}

	if !authorized {
		return failure.BadRequestFromString("employee ID not found in authorized list") //nolint:wrapcheck
	}

	exists, err := s.userRepo.Exist(ctx, identityFilter(req.Email, employeeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("employee ID or email already registered") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	idCardURL, err := s.uploadIDCard(ctx, req.IDCard)
	if err != nil {
		return err
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword, idCardURL)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.RegistrationsTotal.WithLabelValues(req.Role).Inc()

	return nil
}

func (s *serviceImpl) RegisterGuest(ctx context.Context, req dto.RegisterGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	idCardURL, err := s.uploadIDCard(ctx, req.IDCard)
	if err != nil {
		return err
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword, idCardURL)); err != nil {
		log.Error().Err(err).Msg("failed to create guest user")

		return fmt.Errorf("failed to create guest user: %w", err)
	}

	s.metrics.RegistrationsTotal.WithLabelValues(constant.RoleGuest).Inc()

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	var filter gDto.FilterGroup

	switch {
	case req.Email != "":
		filter = emailFilter(req.Email)
	case req.EmployeeID != "":
		filter = gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    userModel.FieldEmployeeID,
					Operator: gDto.FilterOperatorEq,
					Value:    strings.TrimSpace(req.EmployeeID),
					Table:    userModel.TableName,
				},
			},
		}
	default:
		return res, failure.BadRequestFromString("email or employee ID is required") //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginResultFailure).Inc()
		log.Warn().Msg("login attempt with unknown identity")

		return res, failure.BadRequestFromString("invalid credentials") //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.PasswordHash); err != nil {
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginResultFailure).Inc()
		log.Warn().Str("user_id", user.ID).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid credentials") //nolint:wrapcheck
	}

	if user.Role == constant.RoleGuest && user.Status != userModel.StatusApproved {
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginResultFailure).Inc()

		return res, failure.Forbidden("guest account awaiting approval") //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role, user.EmployeeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.metrics.LoginsTotal.WithLabelValues(metrics.LoginResultSuccess).Inc()

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context, userID string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) CheckEmployee(ctx context.Context, employeeID string) (res dto.CheckEmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	authorized, err := s.roster.Exists(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee roster")

		return res, fmt.Errorf("failed to check employee roster: %w", err)
	}

	res.Authorized = authorized

	return res, nil
}

// uploadIDCard stores a base64-encoded ID card scan and returns its URL.
// An empty input means the registrant did not attach one.
func (s *serviceImpl) uploadIDCard(ctx context.Context, encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	contentType := base64.GetContentType(encoded)

	fileData, err := base64.Decode(encoded)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode ID card")

		return "", failure.BadRequestFromString("invalid ID card file") //nolint:wrapcheck
	}

	fileName := uuid.NewString() + extensionFor(contentType)

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, idCardDirectory, fileName, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload ID card to S3")

		return "", fmt.Errorf("failed to upload ID card to S3: %w", err)
	}

	return url, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
