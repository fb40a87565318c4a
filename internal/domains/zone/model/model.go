package model

import "resthouse/shared/model"

const (
	TableName  = "zones"
	EntityName = "zone"

	FieldID   = "id"
	FieldName = "name"
)

type Zone struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
