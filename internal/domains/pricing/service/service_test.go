package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	"resthouse/infras/otel/mocks"
	pricingMocks "resthouse/internal/domains/pricing/mocks"
	"resthouse/internal/domains/pricing/model"
	"resthouse/internal/domains/pricing/model/dto"
	"resthouse/internal/domains/pricing/service"
	cacheMocks "resthouse/shared/cache/mocks"
	"resthouse/shared/constant"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestPricingService_GetRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPricing(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantResult dto.RatesResponse
	}{
		{
			name: "returns configured rates",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RateConfig{
						ID:             "rate-1",
						EmployeeRate:   150,
						ExEmployeeRate: 600,
						GuestRate:      1200,
					}, nil)
			},
			wantErr: false,
			wantResult: dto.RatesResponse{
				Employee:   150,
				ExEmployee: 600,
				Guest:      1200,
			},
		},
		{
			name: "seeds defaults when no config row exists",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RateConfig{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.RateConfig) error {
						assert.NotEmpty(t, m.ID)
						assert.Equal(t, model.DefaultEmployeeRate, m.EmployeeRate)
						assert.Equal(t, model.DefaultExEmployeeRate, m.ExEmployeeRate)
						assert.Equal(t, model.DefaultGuestRate, m.GuestRate)
						assert.Equal(t, constant.SystemActor, m.CreatedBy)

						return nil
					})
			},
			wantErr: false,
			wantResult: dto.RatesResponse{
				Employee:   100,
				ExEmployee: 500,
				Guest:      1000,
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RateConfig{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetRates(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, result)
			}
		})
	}
}

func TestPricingService_UpdateRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPricing(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	req := dto.UpdateRatesRequest{
		Employee:   int64Ptr(200),
		ExEmployee: int64Ptr(700),
		Guest:      int64Ptr(1500),
	}

	tests := []struct {
		name      string
		req       dto.UpdateRatesRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "updates existing config",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.RateConfig{ID: "rate-1"}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, int64(200), fields[model.FieldEmployeeRate])
						assert.Equal(t, int64(700), fields[model.FieldExEmployeeRate])
						assert.Equal(t, int64(1500), fields[model.FieldGuestRate])

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "zero rate still writes through",
			req: dto.UpdateRatesRequest{
				Employee:   int64Ptr(0),
				ExEmployee: int64Ptr(700),
				Guest:      int64Ptr(1500),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.RateConfig{ID: "rate-1"}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, int64(0), fields[model.FieldEmployeeRate])

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "inserts when no config row exists",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.RateConfig{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.RateConfig) error {
						assert.Equal(t, int64(200), m.EmployeeRate)
						assert.Equal(t, int64(700), m.ExEmployeeRate)
						assert.Equal(t, int64(1500), m.GuestRate)

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.RateConfig{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.UpdateRates(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
