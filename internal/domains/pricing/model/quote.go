package model

import (
	"math"
	"resthouse/shared/constant"
	"time"
)

const gstRate = 0.18

// Quote is the price breakdown for a stay. Amounts are in whole rupees.
type Quote struct {
	Hours        int   `json:"hours"`
	Days         int   `json:"days"`
	TotalGuests  int   `json:"total_guests"`
	RatePerNight int64 `json:"rate_per_night"`
	BaseAmount   int64 `json:"base_amount"`
	GSTAmount    int64 `json:"gst_amount"`
	TotalAmount  int64 `json:"total_amount"`
}

// CalculateQuote prices a stay. The stay length is billed in whole days,
// rounded up from hours, with a minimum of one day. The nightly rate is
// picked by the guest category, falling back to the guest rate. GST is
// 18% of the base, rounded to the nearest rupee.
func CalculateQuote(checkIn, checkOut time.Time, adults, children int, role string, rates Rates) Quote {
	hours := int(math.Ceil(checkOut.Sub(checkIn).Hours()))

	days := int(math.Ceil(float64(hours) / 24))
	if days < 1 {
		days = 1
	}

	totalGuests := adults + children

	var rate int64

	switch role {
	case constant.RoleEmployee:
		rate = rates.Employee
	case constant.RoleExEmployee:
		rate = rates.ExEmployee
	default:
		rate = rates.Guest
	}

	base := int64(days) * int64(totalGuests) * rate
	gst := int64(math.Round(float64(base) * gstRate))

	return Quote{
		Hours:        hours,
		Days:         days,
		TotalGuests:  totalGuests,
		RatePerNight: rate,
		BaseAmount:   base,
		GSTAmount:    gst,
		TotalAmount:  base + gst,
	}
}
