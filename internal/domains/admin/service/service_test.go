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
	adminMocks "resthouse/internal/domains/admin/mocks"
	"resthouse/internal/domains/admin/model"
	"resthouse/internal/domains/admin/model/dto"
	"resthouse/internal/domains/admin/service"
	"resthouse/shared/constant"
	"resthouse/shared/failure"
	"resthouse/shared/metrics"
)

// bcrypt hash of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func newService(t *testing.T) (service.Admin, *adminMocks.MockAdmin, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	mtr := metrics.NewWith(prometheus.NewRegistry())

	return service.New(mockRepo, cfg, mocks.NewOtel(), mockJWT, mtr), mockRepo, mockJWT
}

func TestAdminService_Register(t *testing.T) {
	req := dto.RegisterAdminRequest{
		FullName: "Console Admin",
		Email:    "admin@example.com",
		Phone:    "9876543210",
		Password: "password123",
		Role:     constant.AdminRoleManager,
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(repo *adminMocks.MockAdmin)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "bootstrap first admin",
			ctx:  context.Background(),
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, admin model.Admin) error {
						assert.Equal(t, constant.SystemActor, admin.CreatedBy)
						assert.Equal(t, "admin@example.com", admin.Email)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "superadmin creates admin",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.AdminRoleSuper),
				constant.ContextKeyUserID, "admin-1",
			),
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, admin model.Admin) error {
						assert.Equal(t, "admin-1", admin.CreatedBy)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "non-superadmin cannot create admin",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.AdminRoleManager),
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "duplicate email",
			ctx:  context.Background(),
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Register(tt.ctx, req)

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

func TestAdminService_Login(t *testing.T) {
	admin := model.Admin{
		ID:           "admin-1",
		FullName:     "Console Admin",
		Email:        "admin@example.com",
		PasswordHash: passwordHash,
		Role:         constant.AdminRoleSuper,
	}

	t.Run("successful login", func(t *testing.T) {
		svc, repo, mockJWT := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(admin, nil)

		mockJWT.EXPECT().
			GenerateTokenPair(admin.ID, admin.Email, admin.Role, "").
			Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)

		res, err := svc.Login(context.Background(), dto.LoginAdminRequest{Email: "admin@example.com", Password: "password"})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
		assert.Equal(t, admin.ID, res.Admin.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Admin{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginAdminRequest{Email: "nobody@example.com", Password: "password"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(admin, nil)

		_, err := svc.Login(context.Background(), dto.LoginAdminRequest{Email: "admin@example.com", Password: "wrong"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAdminService_Me(t *testing.T) {
	t.Run("returns profile", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Admin{ID: "admin-1", Email: "admin@example.com", Role: constant.AdminRoleAdmin}, nil)

		res, err := svc.Me(context.Background(), "admin-1")

		assert.NoError(t, err)
		assert.Equal(t, constant.AdminRoleAdmin, res.Role)
	})

	t.Run("admin not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Admin{}, nil)

		_, err := svc.Me(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
