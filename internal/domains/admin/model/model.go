package model

import "resthouse/shared/model"

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID           = "id"
	FieldFullName     = "full_name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldPasswordHash = "password_hash"
	FieldRole         = "role"
)

type Admin struct {
	ID           string `db:"id"`
	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	model.Metadata
}
