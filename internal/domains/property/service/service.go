package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"resthouse/config"
	"resthouse/infras/otel"
	"resthouse/infras/s3"
	"resthouse/internal/domains/property/model"
	"resthouse/internal/domains/property/model/dto"
	"resthouse/internal/domains/property/repository"
	zoneModel "resthouse/internal/domains/zone/model"
	zoneRepo "resthouse/internal/domains/zone/repository"
	"resthouse/shared"
	"resthouse/shared/base64"
	"resthouse/shared/cache"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	"resthouse/shared/timezone"
)

const (
	cacheGetAllProperty = "property:gets"
	cacheGetProperty    = "property:get"
)

type Property interface {
	GetAll(ctx context.Context, req gDto.QueryParams, zoneID, search string) (dto.GetPropertiesResponse, error)
	Get(ctx context.Context, id string) (dto.PropertyResponse, error)
	Create(ctx context.Context, req dto.CreatePropertyRequest) error
	Update(ctx context.Context, id string, req dto.UpdatePropertyRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Property
	zoneRepo zoneRepo.Zone
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Property, zoneRepo zoneRepo.Zone, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Property {
	return &serviceImpl{
		repo:     repo,
		zoneRepo: zoneRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func buildListFilter(zoneID, search string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}

	if zoneID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldZoneID,
			Operator: gDto.FilterOperatorEq,
			Value:    zoneID,
			Table:    model.TableName,
		})
	}

	if search != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldName,
			ArgName:  "search_name",
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	return filter
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, zoneID, search string) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllProperties")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == "" {
		req.SortBy = model.FieldName
		req.SortDir = "ASC"
	}

	filter := buildListFilter(zoneID, search)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == "" {
		return res, failure.NotFound("property not found") //nolint:wrapcheck
	}

	res.FromModel(property)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePropertyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureZoneExists(ctx, req.ZoneID); err != nil {
		return err
	}

	imageURLs, err := s.uploadImages(ctx, req.Images)
	if err != nil {
		return err
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if username == "" {
		username = constant.SystemActor
	}

	if err = s.repo.Insert(ctx, req.ToModel(username, imageURLs)); err != nil {
		log.Error().Err(err).Msg("failed to create property")

		return fmt.Errorf("failed to create property: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdatePropertyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	property, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == "" {
		return failure.NotFound("property not found") //nolint:wrapcheck
	}

	if req.ZoneID != nil {
		if err = s.ensureZoneExists(ctx, *req.ZoneID); err != nil {
			return err
		}
	}

	fields := req.Fields()

	if len(req.Images) > 0 {
		imageURLs, err := s.uploadImages(ctx, req.Images)
		if err != nil {
			return err
		}

		fields[model.FieldImages] = pq.StringArray(imageURLs)

		s.deleteImages(ctx, property.Images)
	}

	if len(fields) == 0 {
		return failure.BadRequestFromString("no fields to update") //nolint:wrapcheck
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = username

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update property")

		return fmt.Errorf("failed to update property: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	property, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == "" {
		return failure.NotFound("property not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete property")

		return fmt.Errorf("failed to delete property: %w", err)
	}

	s.deleteImages(ctx, property.Images)
	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) ensureZoneExists(ctx context.Context, zoneID string) error {
	exists, err := s.zoneRepo.Exist(ctx, shared.FilterByID(zoneID, zoneModel.FieldID, zoneModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if zone exists")

		return fmt.Errorf("failed to check if zone exists: %w", err)
	}

	if !exists {
		return failure.BadRequestFromString("zone not found") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) uploadImages(ctx context.Context, encoded []string) ([]string, error) {
	urls := make([]string, 0, len(encoded))

	for _, image := range encoded {
		contentType := base64.GetContentType(image)

		fileData, err := base64.Decode(image)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode property image")

			return nil, failure.BadRequestFromString("invalid image file") //nolint:wrapcheck
		}

		fileName := uuid.NewString() + extensionFor(contentType)

		url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, fileName, contentType, fileData)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload property image to S3")

			return nil, fmt.Errorf("failed to upload property image to S3: %w", err)
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// deleteImages removes replaced or orphaned images in the background.
func (s *serviceImpl) deleteImages(ctx context.Context, imageURLs []string) {
	if len(imageURLs) == 0 {
		return
	}

	bucketName := s.cfg.External.S3.BucketName

	go func() {
		c := context.WithoutCancel(ctx)

		for _, imageURL := range imageURLs {
			objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
			if objectName == constant.Empty {
				log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

				continue
			}

			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete property image from S3")
			}
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheGetProperty)
	}()
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	default:
		return ""
	}
}
