package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	"resthouse/infras/otel/mocks"
	bookingMocks "resthouse/internal/domains/booking/mocks"
	"resthouse/internal/domains/booking/model"
	"resthouse/internal/domains/booking/model/dto"
	"resthouse/internal/domains/booking/service"
	pricingModel "resthouse/internal/domains/pricing/model"
	pricingMocks "resthouse/internal/domains/pricing/service/mocks"
	propertyMocks "resthouse/internal/domains/property/mocks"
	propertyModel "resthouse/internal/domains/property/model"
	userMocks "resthouse/internal/domains/user/mocks"
	userModel "resthouse/internal/domains/user/model"
	cacheMocks "resthouse/shared/cache/mocks"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	"resthouse/shared/metrics"
)

type bookingTestMocks struct {
	repo         *bookingMocks.MockBooking
	userRepo     *userMocks.MockUser
	propertyRepo *propertyMocks.MockProperty
	pricing      *pricingMocks.MockPricing
	cache        *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Booking, bookingTestMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := bookingTestMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		userRepo:     userMocks.NewMockUser(ctrl),
		propertyRepo: propertyMocks.NewMockProperty(ctrl),
		pricing:      pricingMocks.NewMockPricing(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mtr := metrics.NewWith(prometheus.NewRegistry())

	return service.New(m.repo, m.userRepo, m.propertyRepo, m.pricing, cfg, m.cache, mocks.NewOtel(), mtr), m
}

func userCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

var (
	testUser = userModel.User{
		ID:         "user-1",
		EmployeeID: "EMP-001",
		FullName:   "John Doe",
		Email:      "john@example.com",
		Role:       constant.RoleEmployee,
		Status:     userModel.StatusApproved,
	}

	testProperty = propertyModel.Property{
		ID:               "property-1",
		ZoneID:           "zone-1",
		Name:             "Hill View Rest House",
		Location:         "Ridge Road",
		UPIID:            "hillview@upi",
		OfficerName:      "R. Negi",
		OfficerContact:   "9000000001",
		CaretakerName:    "S. Thakur",
		CaretakerContact: "9000000002",
	}
)

func TestBookingService_Create(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(24 * time.Hour)

	validReq := dto.CreateBookingRequest{
		PropertyID: testProperty.ID,
		Category:   model.CategoryGeneral,
		CheckIn:    checkIn.Format(time.RFC3339),
		CheckOut:   checkOut.Format(time.RFC3339),
		Adults:     2,
		Children:   1,
		Purpose:    "family visit",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m bookingTestMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "creates pending booking with captured quote",
			req:  validReq,
			setupMock: func(m bookingTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser, nil)

				m.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty, nil)

				m.pricing.EXPECT().
					ActiveRates(gomock.Any()).
					Return(pricingModel.DefaultRates(), nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
						assert.Equal(t, testUser.FullName, booking.UserSnapshot.FullName)
						assert.Equal(t, testProperty.Name, booking.PropertySnapshot.Name)
						assert.Equal(t, testProperty.UPIID, booking.PropertySnapshot.UPIID)
						assert.Equal(t, testProperty.OfficerName, booking.PropertySnapshot.Officer.Name)
						assert.Equal(t, testProperty.CaretakerContact, booking.PropertySnapshot.Caretaker.Contact)
						assert.Equal(t, model.CategoryGeneral, booking.Category)
						// 1 day, 3 guests at the employee rate of 100
						assert.Equal(t, int64(300), booking.Pricing.BaseAmount)
						assert.Equal(t, int64(54), booking.Pricing.GSTAmount)
						assert.Equal(t, int64(354), booking.Pricing.TotalAmount)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				PropertyID: testProperty.ID,
				CheckIn:    checkOut.Format(time.RFC3339),
				CheckOut:   checkIn.Format(time.RFC3339),
				Adults:     1,
			},
			setupMock: func(m bookingTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "malformed check-in",
			req: dto.CreateBookingRequest{
				PropertyID: testProperty.ID,
				CheckIn:    "tomorrow",
				CheckOut:   checkOut.Format(time.RFC3339),
				Adults:     1,
			},
			setupMock: func(m bookingTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "property not found",
			req:  validReq,
			setupMock: func(m bookingTestMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser, nil)

				m.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Create(userCtx(testUser.ID), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestBookingService_Quote(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("guest rate applies without a role", func(t *testing.T) {
		svc, m := newService(t)

		m.pricing.EXPECT().
			ActiveRates(gomock.Any()).
			Return(pricingModel.DefaultRates(), nil)

		quote, err := svc.Quote(context.Background(), dto.QuoteRequest{
			CheckIn:  checkIn.Format(time.RFC3339),
			CheckOut: checkIn.Add(24 * time.Hour).Format(time.RFC3339),
			Adults:   1,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1000), quote.RatePerNight)
		assert.Equal(t, int64(1180), quote.TotalAmount)
	})

	t.Run("rejects inverted stay", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			CheckIn:  checkIn.Format(time.RFC3339),
			CheckOut: checkIn.Format(time.RFC3339),
			Adults:   1,
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_MyBookings(t *testing.T) {
	svc, m := newService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
			assert.Len(t, filter.Filters, 1)

			return []model.Booking{{ID: "booking-1", UserID: testUser.ID, Status: model.StatusPending}}, nil
		})

	res, err := svc.MyBookings(userCtx(testUser.ID), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
}

func TestBookingService_Decide(t *testing.T) {
	tests := []struct {
		name      string
		approve   bool
		setupMock func(m bookingTestMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "approves pending booking",
			approve: true,
			setupMock: func(m bookingTestMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: model.StatusPending}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusApproved, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:    "rejects pending booking",
			approve: false,
			setupMock: func(m bookingTestMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: model.StatusPending}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusRejected, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:    "decision is final",
			approve: false,
			setupMock: func(m bookingTestMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: model.StatusApproved}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:    "booking not found",
			approve: true,
			setupMock: func(m bookingTestMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			ctx := userCtx("admin-1")

			var err error
			if tt.approve {
				err = svc.Approve(ctx, "booking-1")
			} else {
				err = svc.Reject(ctx, "booking-1")
			}

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

func TestBookingService_PayAtRestHouse(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		setupMock func(m bookingTestMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "owner commits to pay on arrival",
			userID: testUser.ID,
			setupMock: func(m bookingTestMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:            "booking-1",
						UserID:        testUser.ID,
						Status:        model.StatusApproved,
						PaymentStatus: model.PaymentPending,
					}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.PaymentPayOnArrival, fields[model.FieldPaymentStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:   "not the owner",
			userID: "user-2",
			setupMock: func(m bookingTestMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:            "booking-1",
						UserID:        testUser.ID,
						Status:        model.StatusApproved,
						PaymentStatus: model.PaymentPending,
					}, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name:   "booking not approved",
			userID: testUser.ID,
			setupMock: func(m bookingTestMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:            "booking-1",
						UserID:        testUser.ID,
						Status:        model.StatusPending,
						PaymentStatus: model.PaymentPending,
					}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:   "payment already settled",
			userID: testUser.ID,
			setupMock: func(m bookingTestMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:            "booking-1",
						UserID:        testUser.ID,
						Status:        model.StatusApproved,
						PaymentStatus: model.PaymentPaidOnline,
					}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.PayAtRestHouse(userCtx(tt.userID), "booking-1")

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

func TestBookingService_AdminCreate(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	svc, m := newService(t)

	m.userRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testUser, nil)

	m.propertyRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testProperty, nil)

	m.pricing.EXPECT().
		ActiveRates(gomock.Any()).
		Return(pricingModel.DefaultRates(), nil)

	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			assert.Equal(t, model.StatusApproved, booking.Status)
			assert.Equal(t, model.CategoryVIP, booking.Category)
			assert.Equal(t, model.PaymentPaidOnArrival, booking.PaymentStatus)
			assert.Equal(t, "admin-1", booking.CreatedBy)

			return nil
		})

	res, err := svc.AdminCreate(userCtx("admin-1"), dto.AdminCreateBookingRequest{
		UserID:        testUser.ID,
		PropertyID:    testProperty.ID,
		Category:      model.CategoryVIP,
		CheckIn:       checkIn.Format(time.RFC3339),
		CheckOut:      checkIn.Add(48 * time.Hour).Format(time.RFC3339),
		Adults:        1,
		PaymentStatus: model.PaymentPaidOnArrival,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusApproved, res.Status)
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(userCtx("admin-1"), "booking-1"))
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(userCtx("admin-1"), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
