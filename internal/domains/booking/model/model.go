package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pricingModel "resthouse/internal/domains/pricing/model"
	"resthouse/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldPropertyID       = "property_id"
	FieldUserSnapshot     = "user_snapshot"
	FieldPropertySnapshot = "property_snapshot"
	FieldCategory         = "category"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldAdults           = "adults"
	FieldChildren         = "children"
	FieldPurpose          = "purpose"
	FieldPricing          = "pricing"
	FieldStatus           = "status"
	FieldPaymentStatus    = "payment_status"
)

// Room categories a stay can be booked under. Informational only, room
// availability is not tracked per category.
const (
	CategoryGeneral = "general"
	CategoryVIP     = "vip"
	CategoryVVIP    = "vvip"
)

var errInvalidSnapshot = errors.New("invalid snapshot payload")

// UserSnapshot freezes the guest details at booking time so later profile
// edits or deletions do not rewrite booking history.
type UserSnapshot struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id,omitempty"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
}

func (s UserSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *UserSnapshot) Scan(src any) error {
	return scanJSON(src, s)
}

// ContactSnapshot freezes an on-site contact person.
type ContactSnapshot struct {
	Name        string `json:"name,omitempty"`
	Designation string `json:"designation,omitempty"`
	Contact     string `json:"contact,omitempty"`
}

// PropertySnapshot freezes the rest house details at booking time. The UPI
// address and contacts are what the guest pays against, so they must not
// change under an existing booking when the property is edited later.
type PropertySnapshot struct {
	ID        string          `json:"id"`
	ZoneID    string          `json:"zone_id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	UPIID     string          `json:"upi_id,omitempty"`
	Officer   ContactSnapshot `json:"officer"`
	Caretaker ContactSnapshot `json:"caretaker"`
}

func (s PropertySnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *PropertySnapshot) Scan(src any) error {
	return scanJSON(src, s)
}

// Pricing is the quote captured when the booking was placed. Rate changes
// after that never reprice an existing booking.
type Pricing struct {
	pricingModel.Quote
}

func FromQuote(quote pricingModel.Quote) Pricing {
	return Pricing{Quote: quote}
}

func (p Pricing) Value() (driver.Value, error) {
	return json.Marshal(p.Quote)
}

func (p *Pricing) Scan(src any) error {
	return scanJSON(src, &p.Quote)
}

func scanJSON(src, dest any) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("%w: %T", errInvalidSnapshot, src)
	}
}

type Booking struct {
	ID               string           `db:"id"`
	UserID           string           `db:"user_id"`
	PropertyID       string           `db:"property_id"`
	UserSnapshot     UserSnapshot     `db:"user_snapshot"`
	PropertySnapshot PropertySnapshot `db:"property_snapshot"`
	Category         string           `db:"category"`
	CheckIn          time.Time        `db:"check_in"`
	CheckOut         time.Time        `db:"check_out"`
	Adults           int              `db:"adults"`
	Children         int              `db:"children"`
	Purpose          string           `db:"purpose"`
	Pricing          Pricing          `db:"pricing"`
	Status           string           `db:"status"`
	PaymentStatus    string           `db:"payment_status"`
	model.Metadata
}
