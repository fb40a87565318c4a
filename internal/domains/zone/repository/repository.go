package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	propertyModel "resthouse/internal/domains/property/model"
	"resthouse/internal/domains/zone/model"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	gRepo "resthouse/shared/repository"
)

type Zone interface {
	Insert(ctx context.Context, model model.Zone) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Zone, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Zone, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteWithProperties(ctx context.Context, zoneID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Zone]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Zone {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Zone](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DeleteWithProperties removes a zone and every property listed under it in
// one transaction.
func (repo *repositoryImpl) DeleteWithProperties(ctx context.Context, zoneID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".zone.DeleteWithProperties")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.Writer().Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback zone delete")
			}
		}
	}()

	deleteProperties := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", propertyModel.TableName, propertyModel.FieldZoneID)
	if _, err = tx.ExecContext(ctx, deleteProperties, zoneID); err != nil {
		return fmt.Errorf("failed to delete zone properties: %w", err)
	}

	zoneFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    zoneID,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.DeleteTx(ctx, tx, zoneFilter); err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit zone delete: %w", err)
	}

	return nil
}
