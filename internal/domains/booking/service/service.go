package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"resthouse/config"
	"resthouse/infras/otel"
	"resthouse/internal/domains/booking/model"
	"resthouse/internal/domains/booking/model/dto"
	"resthouse/internal/domains/booking/repository"
	pricingModel "resthouse/internal/domains/pricing/model"
	pricingService "resthouse/internal/domains/pricing/service"
	propertyModel "resthouse/internal/domains/property/model"
	propertyRepo "resthouse/internal/domains/property/repository"
	userModel "resthouse/internal/domains/user/model"
	userRepo "resthouse/internal/domains/user/repository"
	"resthouse/shared"
	"resthouse/shared/cache"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	"resthouse/shared/metrics"
	"resthouse/shared/timezone"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (pricingModel.Quote, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	MyBookings(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	PayAtRestHouse(ctx context.Context, id string) error
	AdminCreate(ctx context.Context, req dto.AdminCreateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	userRepo     userRepo.User
	propertyRepo propertyRepo.Property
	pricing      pricingService.Pricing
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	metrics      *metrics.Metrics
}

func New(repo repository.Booking, userRepo userRepo.User, propertyRepo propertyRepo.Property, pricing pricingService.Pricing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, metrics *metrics.Metrics) Booking {
	return &serviceImpl{
		repo:         repo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		pricing:      pricing,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		metrics:      metrics,
	}
}

// Quote prices a prospective stay for the caller without creating anything.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (quote pricingModel.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return quote, failure.BadRequestFromString("invalid check-in or check-out format") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return quote, failure.BadRequestFromString("check-out must be after check-in") //nolint:wrapcheck
	}

	rates, err := s.pricing.ActiveRates(ctx)
	if err != nil {
		return quote, err
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return pricingModel.CalculateQuote(checkIn, checkOut, req.Adults, req.Children, role, rates), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	booking, err := s.buildBooking(ctx, req, user)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.metrics.BookingsTotal.WithLabelValues(metrics.BookingEventCreated).Inc()
	s.invalidate(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) buildBooking(ctx context.Context, req dto.CreateBookingRequest, user userModel.User) (booking model.Booking, err error) {
	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return booking, failure.BadRequestFromString("invalid check-in or check-out format") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return booking, failure.BadRequestFromString("check-out must be after check-in") //nolint:wrapcheck
	}

	property, err := s.getProperty(ctx, req.PropertyID)
	if err != nil {
		return booking, err
	}

	rates, err := s.pricing.ActiveRates(ctx)
	if err != nil {
		return booking, err
	}

	quote := pricingModel.CalculateQuote(checkIn, checkOut, req.Adults, req.Children, user.Role, rates)

	return req.ToModel(user, property, checkIn, checkOut, quote), nil
}

func (s *serviceImpl) MyBookings(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, req, filter)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}

	if status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return s.list(ctx, req, filter)
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	if req.SortBy == "" {
		req.SortBy = constant.DefaultValueSortBy
		req.SortDir = constant.DefaultValueSortDir
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) error {
	return s.decide(ctx, id, model.StatusApproved, metrics.BookingEventApproved)
}

func (s *serviceImpl) Reject(ctx context.Context, id string) error {
	return s.decide(ctx, id, model.StatusRejected, metrics.BookingEventRejected)
}

func (s *serviceImpl) decide(ctx context.Context, id, status, event string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DecideBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !model.CanTransitionStatus(booking.Status, status) {
		return failure.BadRequestFromString("booking has already been decided") //nolint:wrapcheck
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: admin,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.metrics.BookingsTotal.WithLabelValues(event).Inc()
	s.invalidate(ctx)

	return nil
}

// PayAtRestHouse lets the booking owner commit to settling the bill on
// arrival. Only approved bookings with payment still pending qualify.
func (s *serviceImpl) PayAtRestHouse(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PayAtRestHouse")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if booking.UserID != userID {
		return failure.Forbidden("not your booking") //nolint:wrapcheck
	}

	if booking.Status != model.StatusApproved {
		return failure.BadRequestFromString("booking is not approved") //nolint:wrapcheck
	}

	if !model.CanTransitionPayment(booking.PaymentStatus, model.PaymentPayOnArrival) {
		return failure.BadRequestFromString("payment has already been settled") //nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldPaymentStatus: model.PaymentPayOnArrival,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.metrics.BookingsTotal.WithLabelValues(metrics.BookingEventPayOnArrival).Inc()
	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) AdminCreate(ctx context.Context, req dto.AdminCreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminCreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-in or check-out format") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in") //nolint:wrapcheck
	}

	user, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return res, err
	}

	property, err := s.getProperty(ctx, req.PropertyID)
	if err != nil {
		return res, err
	}

	rates, err := s.pricing.ActiveRates(ctx)
	if err != nil {
		return res, err
	}

	quote := pricingModel.CalculateQuote(checkIn, checkOut, req.Adults, req.Children, user.Role, rates)

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	booking := req.ToModel(admin, user, property, checkIn, checkOut, quote)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.metrics.BookingsTotal.WithLabelValues(metrics.BookingEventCreated).Inc()
	s.invalidate(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exists {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.metrics.BookingsTotal.WithLabelValues(metrics.BookingEventDeleted).Inc()
	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getUser(ctx context.Context, id string) (userModel.User, error) {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return user, failure.BadRequestFromString("user not found") //nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) getProperty(ctx context.Context, id string) (propertyModel.Property, error) {
	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(id, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return property, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == "" {
		return property, failure.BadRequestFromString("property not found") //nolint:wrapcheck
	}

	return property, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
