package model

import "resthouse/shared/model"

const (
	TableName  = "rate_config"
	EntityName = "rate_config"

	FieldID             = "id"
	FieldEmployeeRate   = "employee_rate"
	FieldExEmployeeRate = "ex_employee_rate"
	FieldGuestRate      = "guest_rate"
)

// Default nightly rates per guest, applied when no configuration row
// has been saved yet.
const (
	DefaultEmployeeRate   int64 = 100
	DefaultExEmployeeRate int64 = 500
	DefaultGuestRate      int64 = 1000
)

type RateConfig struct {
	ID             string `db:"id"`
	EmployeeRate   int64  `db:"employee_rate"`
	ExEmployeeRate int64  `db:"ex_employee_rate"`
	GuestRate      int64  `db:"guest_rate"`
	model.Metadata
}

// Rates is the role-to-rate view used by quote calculation.
type Rates struct {
	Employee   int64
	ExEmployee int64
	Guest      int64
}

func (m RateConfig) Rates() Rates {
	return Rates{
		Employee:   m.EmployeeRate,
		ExEmployee: m.ExEmployeeRate,
		Guest:      m.GuestRate,
	}
}

func DefaultRates() Rates {
	return Rates{
		Employee:   DefaultEmployeeRate,
		ExEmployee: DefaultExEmployeeRate,
		Guest:      DefaultGuestRate,
	}
}
