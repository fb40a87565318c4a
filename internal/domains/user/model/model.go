package model

import "resthouse/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldEmployeeID   = "employee_id"
	FieldFullName     = "full_name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldPasswordHash = "password_hash"
	FieldRole         = "role"
	FieldStatus       = "status"
	FieldIDCardURL    = "id_card_url"
)

// Account statuses. Guests start pending and must be approved before
// they can sign in; employees are approved at registration.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type User struct {
	ID           string `db:"id"`
	EmployeeID   string `db:"employee_id"`
	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	Status       string `db:"status"`
	IDCardURL    string `db:"id_card_url"`
	model.Metadata
}
