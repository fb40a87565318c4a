package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	"resthouse/infras/otel/mocks"
	s3Mocks "resthouse/infras/s3/mocks"
	propertyMocks "resthouse/internal/domains/property/mocks"
	"resthouse/internal/domains/property/model"
	"resthouse/internal/domains/property/model/dto"
	"resthouse/internal/domains/property/service"
	zoneMocks "resthouse/internal/domains/zone/mocks"
	cacheMocks "resthouse/shared/cache/mocks"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
)

type propertyTestMocks struct {
	repo     *propertyMocks.MockProperty
	zoneRepo *zoneMocks.MockZone
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newService(t *testing.T) (service.Property, propertyTestMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := propertyTestMocks{
		repo:     propertyMocks.NewMockProperty(ctrl),
		zoneRepo: zoneMocks.NewMockZone(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(m.repo, m.zoneRepo, cfg, m.cache, mocks.NewOtel(), m.s3), m
}

func TestPropertyService_GetAll(t *testing.T) {
	svc, m := newService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Property, error) {
			assert.Equal(t, model.FieldName, params.SortBy)

			return []model.Property{{
				ID:           "property-1",
				ZoneID:       "zone-1",
				Name:         "Hill View Rest House",
				VVIPRooms:    1,
				VIPRooms:     2,
				GeneralRooms: 4,
			}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "zone-1", "")

	assert.NoError(t, err)
	assert.Len(t, res.Properties, 1)
	assert.Equal(t, 7, res.Properties[0].TotalRooms)
	assert.Equal(t, 1, res.TotalData)
}

func TestPropertyService_Get(t *testing.T) {
	t.Run("returns property", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{ID: "property-1", Name: "Hill View Rest House"}, nil)

		res, err := svc.Get(context.Background(), "property-1")

		assert.NoError(t, err)
		assert.Equal(t, "Hill View Rest House", res.Name)
	})

	t.Run("property not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPropertyService_Create(t *testing.T) {
	req := dto.CreatePropertyRequest{
		ZoneID:       "0d2cd5cc-5b68-4b8a-b2de-64f08e07dbd3",
		Name:         "Hill View Rest House",
		Location:     "Ridge Road",
		VVIPRooms:    1,
		VIPRooms:     2,
		GeneralRooms: 4,
	}

	t.Run("successful create", func(t *testing.T) {
		svc, m := newService(t)

		m.zoneRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, property model.Property) error {
				assert.Equal(t, req.ZoneID, property.ZoneID)
				assert.Equal(t, "Hill View Rest House", property.Name)

				return nil
			})

		err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("zone not found", func(t *testing.T) {
		svc, m := newService(t)

		m.zoneRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestPropertyService_Update(t *testing.T) {
	rooms := 3
	name := "Lake View Rest House"

	t.Run("partial update keeps zero counts", func(t *testing.T) {
		svc, m := newService(t)

		zero := 0

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{ID: "property-1", VVIPRooms: 1}, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 0, fields[model.FieldVVIPRooms])
				assert.Equal(t, name, fields[model.FieldName])
				assert.NotContains(t, fields, model.FieldLocation)

				return nil
			})

		err := svc.Update(context.Background(), "property-1", dto.UpdatePropertyRequest{
			Name:      &name,
			VVIPRooms: &zero,
		})

		assert.NoError(t, err)
	})

	t.Run("property not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		err := svc.Update(context.Background(), "missing", dto.UpdatePropertyRequest{VIPRooms: &rooms})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("no fields to update", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{ID: "property-1"}, nil)

		err := svc.Update(context.Background(), "property-1", dto.UpdatePropertyRequest{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestPropertyService_Delete(t *testing.T) {
	t.Run("deletes property and its images", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{ID: "property-1", Images: []string{"https://cdn.example.com/property/a.png"}}, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		// image cleanup runs in the background
		m.s3.EXPECT().
			GetObjectNameFromURL(gomock.Any(), gomock.Any()).
			Return("a.png").
			AnyTimes()
		m.s3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "property-1")

		assert.NoError(t, err)
	})

	t.Run("property not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
