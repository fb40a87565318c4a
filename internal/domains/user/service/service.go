package service

import (
	"context"
	"fmt"
	"resthouse/config"
	"resthouse/infras/otel"
	"resthouse/internal/domains/user/model"
	"resthouse/internal/domains/user/model/dto"
	"resthouse/internal/domains/user/repository"
	"resthouse/shared"
	"resthouse/shared/cache"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllUser = "user:gets"
	cacheCountUser  = "user:count"
)

type User interface {
	GetAll(ctx context.Context, req gDto.QueryParams, search, listFilter string) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	PendingGuests(ctx context.Context) (dto.GetPendingGuestsResponse, error)
	ApproveGuest(ctx context.Context, id string) error
	RejectGuest(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func eqFilter(field, value string) gDto.Filter {
	return gDto.Filter{
		Field:    field,
		Operator: gDto.FilterOperatorEq,
		Value:    value,
		Table:    model.TableName,
	}
}

// buildListFilter translates the search text and dashboard filter into a
// where clause. GUEST means approved guests; pending ones live on the
// pending-guests view.
func buildListFilter(search, listFilter string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}

	if search != "" {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldFullName, ArgName: "search_full_name", Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
				gDto.Filter{Field: model.FieldEmail, ArgName: "search_email", Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
				gDto.Filter{Field: model.FieldEmployeeID, ArgName: "search_employee_id", Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
			},
		})
	}

	switch listFilter {
	case dto.ListFilterPending:
		filter.Filters = append(filter.Filters, eqFilter(model.FieldStatus, model.StatusPending))
	case dto.ListFilterRejected:
		filter.Filters = append(filter.Filters, eqFilter(model.FieldStatus, model.StatusRejected))
	case dto.ListFilterEmployee:
		filter.Filters = append(filter.Filters, eqFilter(model.FieldRole, constant.RoleEmployee))
	case dto.ListFilterGuest:
		filter.Filters = append(filter.Filters, eqFilter(model.FieldRole, constant.RoleGuest))
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			ArgName:  "guest_status",
			Operator: gDto.FilterOperatorEq,
			Value:    model.StatusApproved,
			Table:    model.TableName,
		})
	}

	return filter
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, search, listFilter string) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == "" {
		req.SortBy = constant.DefaultValueSortBy
		req.SortDir = constant.DefaultValueSortDir
	}

	filter := buildListFilter(search, listFilter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	res.Stats, err = s.stats(ctx)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) stats(ctx context.Context) (stats dto.UserStats, err error) {
	counts := []struct {
		dest   *int
		filter gDto.FilterGroup
	}{
		{&stats.Pending, gDto.FilterGroup{Filters: []any{eqFilter(model.FieldStatus, model.StatusPending)}}},
		{&stats.Rejected, gDto.FilterGroup{Filters: []any{eqFilter(model.FieldStatus, model.StatusRejected)}}},
		{&stats.Employee, gDto.FilterGroup{Filters: []any{eqFilter(model.FieldRole, constant.RoleEmployee)}}},
		{&stats.Guest, buildListFilter("", dto.ListFilterGuest)},
		{&stats.All, gDto.FilterGroup{}},
	}

	for _, c := range counts {
		count, err := s.repo.Count(ctx, c.filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count user stats")

			return stats, fmt.Errorf("failed to count user stats: %w", err)
		}

		*c.dest = count
	}

	return stats, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) PendingGuests(ctx context.Context) (res dto.GetPendingGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PendingGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			eqFilter(model.FieldRole, constant.RoleGuest),
			eqFilter(model.FieldStatus, model.StatusPending),
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending guests")

		return res, fmt.Errorf("failed to get pending guests: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) ApproveGuest(ctx context.Context, id string) error {
	return s.setGuestStatus(ctx, id, model.StatusApproved)
}

func (s *serviceImpl) RejectGuest(ctx context.Context, id string) error {
	return s.setGuestStatus(ctx, id, model.StatusRejected)
}

func (s *serviceImpl) setGuestStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetGuestStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if user.Role != constant.RoleGuest {
		return failure.BadRequestFromString("not a guest") //nolint:wrapcheck
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: status}, admin)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest status")

		return fmt.Errorf("failed to update guest status: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
		shared.InvalidateCaches(c, s.cache, cacheCountUser)
	}()
}
