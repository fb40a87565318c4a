package repository

import (
	"context"
	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	"resthouse/internal/domains/roster/model"
	gDto "resthouse/shared/dto"
	gRepo "resthouse/shared/repository"
)

type Roster interface {
	Insert(ctx context.Context, model model.EmployeeRoster) error
	InsertBulk(ctx context.Context, models []model.EmployeeRoster) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EmployeeRoster, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EmployeeRoster, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.EmployeeRoster]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Roster {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.EmployeeRoster](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
