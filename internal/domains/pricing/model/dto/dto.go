package dto

import (
	"resthouse/internal/domains/pricing/model"
)

type RatesResponse struct {
	Employee   int64 `json:"employee"`
	ExEmployee int64 `json:"ex_employee"`
	Guest      int64 `json:"guest"`
}

func (d *RatesResponse) FromModel(m model.RateConfig) {
	d.Employee = m.EmployeeRate
	d.ExEmployee = m.ExEmployeeRate
	d.Guest = m.GuestRate
}

func (d *RatesResponse) FromRates(r model.Rates) {
	d.Employee = r.Employee
	d.ExEmployee = r.ExEmployee
	d.Guest = r.Guest
}

type UpdateRatesRequest struct {
	Employee   *int64 `json:"employee"    validate:"required,gte=0"`
	ExEmployee *int64 `json:"ex_employee" validate:"required,gte=0"`
	Guest      *int64 `json:"guest"       validate:"required,gte=0"`
}

func (d UpdateRatesRequest) Rates() model.Rates {
	return model.Rates{
		Employee:   *d.Employee,
		ExEmployee: *d.ExEmployee,
		Guest:      *d.Guest,
	}
}
