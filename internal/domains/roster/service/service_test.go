package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	"resthouse/infras/otel/mocks"
	rosterMocks "resthouse/internal/domains/roster/mocks"
	"resthouse/internal/domains/roster/model"
	"resthouse/internal/domains/roster/model/dto"
	"resthouse/internal/domains/roster/service"
	cacheMocks "resthouse/shared/cache/mocks"
	"resthouse/shared/constant"
	"resthouse/shared/failure"
	gDto "resthouse/shared/dto"
)

func newService(t *testing.T) (service.Roster, *rosterMocks.MockRoster, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := rosterMocks.NewMockRoster(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRosterService_Add(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.AddEmployeeIDRequest
		setupMock func(repo *rosterMocks.MockRoster)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful add",
			req:  dto.AddEmployeeIDRequest{EmployeeID: "EMP-001"},
			setupMock: func(repo *rosterMocks.MockRoster) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.EmployeeRoster) error {
						assert.Equal(t, "EMP-001", m.EmployeeID)
						assert.NotEmpty(t, m.ID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate returns conflict",
			req:  dto.AddEmployeeIDRequest{EmployeeID: "EMP-001"},
			setupMock: func(repo *rosterMocks.MockRoster) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:      "blank id rejected",
			req:       dto.AddEmployeeIDRequest{EmployeeID: "   "},
			setupMock: func(repo *rosterMocks.MockRoster) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "repository error",
			req:  dto.AddEmployeeIDRequest{EmployeeID: "EMP-002"},
			setupMock: func(repo *rosterMocks.MockRoster) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Add(ctx, tt.req)

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

func TestRosterService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		employeeID string
		setupMock  func(repo *rosterMocks.MockRoster)
		wantErr    bool
		wantCode   int
	}{
		{
			name:       "successful delete",
			employeeID: "EMP-001",
			setupMock: func(repo *rosterMocks.MockRoster) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "missing id returns not found",
			employeeID: "EMP-404",
			setupMock: func(repo *rosterMocks.MockRoster) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Delete(context.Background(), tt.employeeID)

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

func TestRosterService_Import(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.EmployeeRoster{{EmployeeID: "EMP-001"}}, nil)

	repo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, models []model.EmployeeRoster) error {
			assert.Len(t, models, 2)
			assert.Equal(t, "EMP-002", models[0].EmployeeID)
			assert.Equal(t, "EMP-003", models[1].EmployeeID)

			return nil
		})

	res, err := svc.Import(context.Background(), []string{"EMP-001", "EMP-002", " EMP-003 ", "EMP-002", ""})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Skipped)
}

func TestRosterService_ImportAllExisting(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.EmployeeRoster{{EmployeeID: "EMP-001"}}, nil)

	res, err := svc.Import(context.Background(), []string{"EMP-001"})

	assert.NoError(t, err)
	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, 1, res.Skipped)
}

func TestRosterService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.EmployeeRoster, error) {
			assert.Equal(t, model.FieldEmployeeID, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.EmployeeRoster{{ID: "1", EmployeeID: "EMP-001"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "EMP")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.EmployeeIDs, 1)
	assert.Equal(t, "EMP-001", res.EmployeeIDs[0].EmployeeID)
}

func TestRosterService_Exists(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	exists, err := svc.Exists(context.Background(), " EMP-001 ")

	assert.NoError(t, err)
	assert.True(t, exists)
}
