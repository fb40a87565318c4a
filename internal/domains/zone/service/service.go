package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"resthouse/config"
	"resthouse/infras/otel"
	"resthouse/internal/domains/zone/model"
	"resthouse/internal/domains/zone/model/dto"
	"resthouse/internal/domains/zone/repository"
	"resthouse/shared"
	"resthouse/shared/cache"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
)

const (
	cacheGetAllZone = "zone:gets"

	// Zone deletes cascade to properties, so their cache goes stale too.
	cacheGetAllProperty = "property:gets"
)

type Zone interface {
	GetAll(ctx context.Context) (dto.GetZonesResponse, error)
	Create(ctx context.Context, req dto.CreateZoneRequest) error
	Update(ctx context.Context, id string, req dto.UpdateZoneRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Zone
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Zone, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Zone {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func nameFilter(name string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.TrimSpace(name),
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetZonesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllZones")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.MaxValueLimit,
		SortBy:  model.FieldName,
		SortDir: "ASC",
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllZone, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get zones")

		return res, fmt.Errorf("failed to get zones: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save zones to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateZoneRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateZone")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, nameFilter(req.Name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if zone exists")

		return fmt.Errorf("failed to check if zone exists: %w", err)
	}

	if exists {
		return failure.Conflict("zone already exists") //nolint:wrapcheck
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if username == "" {
		username = constant.SystemActor
	}

	if err = s.repo.Insert(ctx, req.ToModel(username)); err != nil {
		log.Error().Err(err).Msg("failed to create zone")

		return fmt.Errorf("failed to create zone: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateZoneRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateZone")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	zone, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get zone")

		return fmt.Errorf("failed to get zone: %w", err)
	}

	if zone.ID == "" {
		return failure.NotFound("zone not found") //nolint:wrapcheck
	}

	other, err := s.repo.Get(ctx, nameFilter(req.Name), model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check zone name")

		return fmt.Errorf("failed to check zone name: %w", err)
	}

	if other.ID != "" && other.ID != id {
		return failure.Conflict("zone already exists") //nolint:wrapcheck
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(struct {
		Name string `db:"name"`
	}{Name: strings.TrimSpace(req.Name)}, username)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update zone")

		return fmt.Errorf("failed to update zone: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteZone")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if zone exists")

		return fmt.Errorf("failed to check if zone exists: %w", err)
	}

	if !exists {
		return failure.NotFound("zone not found") //nolint:wrapcheck
	}

	if err = s.repo.DeleteWithProperties(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete zone")

		return fmt.Errorf("failed to delete zone: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllZone)
		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
	}()
}
