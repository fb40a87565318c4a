package service

import (
	"context"
	"fmt"
	"resthouse/config"
	"resthouse/infras/otel"
	"resthouse/internal/domains/roster/model"
	"resthouse/internal/domains/roster/model/dto"
	"resthouse/internal/domains/roster/repository"
	"resthouse/shared"
	"resthouse/shared/cache"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRoster = "roster:gets"
	cacheCountRoster  = "roster:count"
)

type Roster interface {
	GetAll(ctx context.Context, req gDto.QueryParams, search string) (dto.GetEmployeeIDsResponse, error)
	Add(ctx context.Context, req dto.AddEmployeeIDRequest) error
	Import(ctx context.Context, employeeIDs []string) (dto.ImportEmployeeIDsResponse, error)
	Delete(ctx context.Context, employeeID string) error
	Exists(ctx context.Context, employeeID string) (bool, error)
}

type serviceImpl struct {
	repo  repository.Roster
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Roster, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Roster {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func searchFilter(search string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}

	if search != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldEmployeeID,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	return filter
}

func employeeIDFilter(employeeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmployeeID,
				Operator: gDto.FilterOperatorEq,
				Value:    employeeID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, search string) (res dto.GetEmployeeIDsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllEmployeeIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == "" {
		req.SortBy = model.FieldEmployeeID
		req.SortDir = gDto.SortDirAsc
	}

	filter := searchFilter(search)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoster, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employee ids")

		return res, fmt.Errorf("failed to count employee ids: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee ids")

		return res, fmt.Errorf("failed to get employee ids: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employee ids to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddEmployeeIDRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddEmployeeID")
	defer scope.End()
	defer scope.TraceIfError(err)

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return failure.BadRequestFromString("employee_id is required") //nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, employeeIDFilter(employeeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee id exists")

		return fmt.Errorf("failed to check if employee id exists: %w", err)
	}

	if exists {
		return failure.Conflict("employee ID already exists") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to add employee id")

		return fmt.Errorf("failed to add employee id: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Import upserts a batch of employee IDs, skipping ones already present.
func (s *serviceImpl) Import(ctx context.Context, employeeIDs []string) (res dto.ImportEmployeeIDsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImportEmployeeIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.SystemActor
	}

	seen := make(map[string]bool, len(employeeIDs))
	cleaned := make([]string, 0, len(employeeIDs))

	for _, id := range employeeIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			res.Skipped++

			continue
		}

		seen[id] = true
		cleaned = append(cleaned, id)
	}

	if len(cleaned) == 0 {
		return res, nil
	}

	existing, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmployeeID,
				Operator: gDto.FilterOperatorIn,
				Value:    cleaned,
				Table:    model.TableName,
			},
		},
	}, model.FieldEmployeeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing employee ids")

		return res, fmt.Errorf("failed to check existing employee ids: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, entry := range existing {
		present[entry.EmployeeID] = true
	}

	now := timezone.Now()
	toInsert := make([]model.EmployeeRoster, 0, len(cleaned))

	for _, id := range cleaned {
		if present[id] {
			res.Skipped++

			continue
		}

		toInsert = append(toInsert, model.EmployeeRoster{
			ID:         uuid.NewString(),
			EmployeeID: id,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	if len(toInsert) > 0 {
		if err = s.repo.InsertBulk(ctx, toInsert); err != nil {
			log.Error().Err(err).Msg("failed to bulk insert employee ids")

			return res, fmt.Errorf("failed to bulk insert employee ids: %w", err)
		}
	}

	res.Imported = len(toInsert)

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, employeeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteEmployeeID")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := employeeIDFilter(employeeID)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee id exists")

		return fmt.Errorf("failed to check if employee id exists: %w", err)
	}

	if !exists {
		return failure.NotFound("employee ID not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete employee id")

		return fmt.Errorf("failed to delete employee id: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Exists(ctx context.Context, employeeID string) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EmployeeIDExists")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err = s.repo.Exist(ctx, employeeIDFilter(strings.TrimSpace(employeeID)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee id exists")

		return false, fmt.Errorf("failed to check if employee id exists: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoster)
		shared.InvalidateCaches(c, s.cache, cacheCountRoster)
	}()
}
