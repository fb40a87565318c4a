package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	"resthouse/infras/otel/mocks"
	zoneMocks "resthouse/internal/domains/zone/mocks"
	"resthouse/internal/domains/zone/model"
	"resthouse/internal/domains/zone/model/dto"
	"resthouse/internal/domains/zone/service"
	cacheMocks "resthouse/shared/cache/mocks"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
)

func newService(t *testing.T) (service.Zone, *zoneMocks.MockZone, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := zoneMocks.NewMockZone(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestZoneService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Zone, error) {
			assert.Equal(t, model.FieldName, params.SortBy)
			assert.Equal(t, "ASC", params.SortDir)

			return []model.Zone{
				{ID: "zone-1", Name: "North"},
				{ID: "zone-2", Name: "South"},
			}, nil
		})

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Zones, 2)
	assert.Equal(t, "North", res.Zones[0].Name)
}

func TestZoneService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *zoneMocks.MockZone)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful create",
			setupMock: func(repo *zoneMocks.MockZone) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, zone model.Zone) error {
						assert.Equal(t, "North", zone.Name)
						assert.NotEmpty(t, zone.ID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate name",
			setupMock: func(repo *zoneMocks.MockZone) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Create(context.Background(), dto.CreateZoneRequest{Name: " North "})

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

func TestZoneService_Update(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *zoneMocks.MockZone)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func(repo *zoneMocks.MockZone) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Zone{ID: "zone-1", Name: "North"}, nil)

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Zone{}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "zone not found",
			setupMock: func(repo *zoneMocks.MockZone) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Zone{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "name taken by another zone",
			setupMock: func(repo *zoneMocks.MockZone) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Zone{ID: "zone-1", Name: "North"}, nil)

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID).
					Return(model.Zone{ID: "zone-2"}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Update(context.Background(), "zone-1", dto.UpdateZoneRequest{Name: "North Hills"})

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

func TestZoneService_Delete(t *testing.T) {
	t.Run("cascades to properties", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		repo.EXPECT().
			DeleteWithProperties(gomock.Any(), "zone-1").
			Return(nil)

		err := svc.Delete(context.Background(), "zone-1")

		assert.NoError(t, err)
	})

	t.Run("zone not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
