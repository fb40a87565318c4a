package repository

import (
	"context"
	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	"resthouse/internal/domains/pricing/model"
	gDto "resthouse/shared/dto"
	gRepo "resthouse/shared/repository"
)

type Pricing interface {
	Insert(ctx context.Context, model model.RateConfig) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RateConfig, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RateConfig]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Pricing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RateConfig](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
