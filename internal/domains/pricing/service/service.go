package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resthouse/config"
	"resthouse/infras/otel"
	"resthouse/internal/domains/pricing/model"
	"resthouse/internal/domains/pricing/model/dto"
	"resthouse/internal/domains/pricing/repository"
	"resthouse/shared"
	"resthouse/shared/cache"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRates = "pricing:rates"
)

type Pricing interface {
	GetRates(ctx context.Context) (dto.RatesResponse, error)
	UpdateRates(ctx context.Context, req dto.UpdateRatesRequest) error
	ActiveRates(ctx context.Context) (model.Rates, error)
}

type serviceImpl struct {
	repo  repository.Pricing
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Pricing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetRates(ctx context.Context) (res dto.RatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRates")
	defer scope.End()
	defer scope.TraceIfError(err)

	rates, err := s.ActiveRates(ctx)
	if err != nil {
		return res, err
	}

	res.FromRates(rates)

	return res, nil
}

// ActiveRates returns the configured nightly rates, seeding the defaults
// the first time the configuration is read.
func (s *serviceImpl) ActiveRates(ctx context.Context) (rates model.Rates, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveRates")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetRates, &rates)
	if err == nil {
		return rates, nil
	}

	rateConfig, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate config")

		return rates, fmt.Errorf("failed to get rate config: %w", err)
	}

	if rateConfig.ID == "" {
		rateConfig = s.defaultRateConfig()

		if err = s.repo.Insert(ctx, rateConfig); err != nil {
			log.Error().Err(err).Msg("failed to seed default rate config")

			return rates, fmt.Errorf("failed to seed default rate config: %w", err)
		}
	}

	rates = rateConfig.Rates()

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetRates, rates, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rates to cache")
		}
	}()

	return rates, nil
}

func (s *serviceImpl) UpdateRates(ctx context.Context, req dto.UpdateRatesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRates")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	rates := req.Rates()

	rateConfig, err := s.repo.Get(ctx, gDto.FilterGroup{}, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate config")

		return fmt.Errorf("failed to get rate config: %w", err)
	}

	if rateConfig.ID == "" {
		newConfig := s.defaultRateConfig()
		newConfig.EmployeeRate = rates.Employee
		newConfig.ExEmployeeRate = rates.ExEmployee
		newConfig.GuestRate = rates.Guest
		newConfig.CreatedBy = admin
		newConfig.ModifiedBy = admin

		if err = s.repo.Insert(ctx, newConfig); err != nil {
			log.Error().Err(err).Msg("failed to insert rate config")

			return fmt.Errorf("failed to insert rate config: %w", err)
		}
	} else {
		// Explicit field map so a rate of zero still writes through.
		updatedFields := map[string]any{
			model.FieldEmployeeRate:   rates.Employee,
			model.FieldExEmployeeRate: rates.ExEmployee,
			model.FieldGuestRate:      rates.Guest,
			constant.FieldModifiedAt:  timezone.Now(),
			constant.FieldModifiedBy:  admin,
		}

		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(rateConfig.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update rate config")

			return fmt.Errorf("failed to update rate config: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetRates); err != nil {
			log.Error().Err(err).Msg("failed to invalidate rates cache")
		}
	}()

	return nil
}

func (s *serviceImpl) defaultRateConfig() model.RateConfig {
	now := timezone.Now()

	cfg := model.RateConfig{
		ID:             uuid.New().String(),
		EmployeeRate:   model.DefaultEmployeeRate,
		ExEmployeeRate: model.DefaultExEmployeeRate,
		GuestRate:      model.DefaultGuestRate,
	}
	cfg.CreatedAt = now
	cfg.ModifiedAt = now
	cfg.CreatedBy = constant.SystemActor
	cfg.ModifiedBy = constant.SystemActor

	return cfg
}
