package service_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	"resthouse/infras/jwt"
	jwtMocks "resthouse/infras/jwt/mocks"
	"resthouse/infras/otel/mocks"
	s3Mocks "resthouse/infras/s3/mocks"
	"resthouse/internal/domains/auth/model/dto"
	"resthouse/internal/domains/auth/service"
	rosterMocks "resthouse/internal/domains/roster/service/mocks"
	userMocks "resthouse/internal/domains/user/mocks"
	userModel "resthouse/internal/domains/user/model"
	"resthouse/shared/constant"
	"resthouse/shared/failure"
	"resthouse/shared/metrics"
)

// bcrypt hash of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type authMocks struct {
	userRepo *userMocks.MockUser
	roster   *rosterMocks.MockRoster
	jwt      *jwtMocks.MockJWT
	s3       *s3Mocks.MockS3
}

func newService(t *testing.T) (service.Auth, authMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := authMocks{
		userRepo: userMocks.NewMockUser(ctrl),
		roster:   rosterMocks.NewMockRoster(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	mtr := metrics.NewWith(prometheus.NewRegistry())

	return service.New(m.userRepo, m.roster, cfg, mocks.NewOtel(), m.jwt, m.s3, mtr), m
}

func TestAuthService_Register(t *testing.T) {
	validReq := dto.RegisterRequest{
		EmployeeID: "EMP-001",
		FullName:   "John Doe",
		Email:      "John@Example.com",
		Phone:      "9876543210",
		Password:   "password123",
		Role:       constant.RoleEmployee,
	}

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(m authMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			req:  validReq,
			setupMock: func(m authMocks) {
				m.roster.EXPECT().
					Exists(gomock.Any(), "EMP-001").
					Return(true, nil)

				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.userRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "EMP-001", user.EmployeeID)
						assert.Equal(t, "john@example.com", user.Email)
						assert.Equal(t, userModel.StatusApproved, user.Status)
						assert.NotEqual(t, "password123", user.PasswordHash)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "employee ID not on roster",
			req:  validReq,
			setupMock: func(m authMocks) {
				m.roster.EXPECT().
					Exists(gomock.Any(), "EMP-001").
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "duplicate identity",
			req:  validReq,
			setupMock: func(m authMocks) {
				m.roster.EXPECT().
					Exists(gomock.Any(), "EMP-001").
					Return(true, nil)

				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_RegisterGuest(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m authMocks)
		wantErr   bool
	}{
		{
			name: "guest starts pending",
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.userRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleGuest, user.Role)
						assert.Equal(t, userModel.StatusPending, user.Status)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.RegisterGuest(context.Background(), dto.RegisterGuestRequest{
				FullName: "Jane Visitor",
				Email:    "jane@example.com",
				Phone:    "9876543211",
				Password: "password123",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	employee := userModel.User{
		ID:           "user-1",
		EmployeeID:   "EMP-001",
		Email:        "john@example.com",
		PasswordHash: passwordHash,
		Role:         constant.RoleEmployee,
		Status:       userModel.StatusApproved,
	}

	pendingGuest := userModel.User{
		ID:           "user-2",
		Email:        "jane@example.com",
		PasswordHash: passwordHash,
		Role:         constant.RoleGuest,
		Status:       userModel.StatusPending,
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(m authMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "login by email",
			req:  dto.LoginRequest{Email: "john@example.com", Password: "password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)

				m.jwt.EXPECT().
					GenerateTokenPair(employee.ID, employee.Email, employee.Role, employee.EmployeeID).
					Return(tokenPair, nil)
			},
			wantErr: false,
		},
		{
			name: "login by employee ID",
			req:  dto.LoginRequest{EmployeeID: "EMP-001", Password: "password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)

				m.jwt.EXPECT().
					GenerateTokenPair(employee.ID, employee.Email, employee.Role, employee.EmployeeID).
					Return(tokenPair, nil)
			},
			wantErr: false,
		},
		{
			name:      "missing identity",
			req:       dto.LoginRequest{Password: "password"},
			setupMock: func(m authMocks) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "unknown account",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "john@example.com", Password: "wrong-password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "pending guest is blocked",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingGuest, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "refresh-token", res.RefreshToken)
				assert.Equal(t, employee.ID, res.User.ID)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		svc, m := newService(t)

		m.jwt.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, m := newService(t)

		m.jwt.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Me(t *testing.T) {
	t.Run("returns profile", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-1", Email: "john@example.com", Role: constant.RoleEmployee}, nil)

		res, err := svc.Me(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "john@example.com", res.Email)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Me(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAuthService_CheckEmployee(t *testing.T) {
	svc, m := newService(t)

	m.roster.EXPECT().
		Exists(gomock.Any(), "EMP-001").
		Return(true, nil)

	res, err := svc.CheckEmployee(context.Background(), " EMP-001 ")

	assert.NoError(t, err)
	assert.True(t, res.Authorized)
}
