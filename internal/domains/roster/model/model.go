package model

import "resthouse/shared/model"

const (
	TableName  = "employee_roster"
	EntityName = "employee_roster"

	FieldID         = "id"
	FieldEmployeeID = "employee_id"
)

// EmployeeRoster is one entry of the HR-provided list of employee IDs
// allowed to register as employees.
type EmployeeRoster struct {
	ID         string `db:"id"`
	EmployeeID string `db:"employee_id"`
	model.Metadata
}
