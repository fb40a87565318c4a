package model

import "slices"

// Booking statuses. A decision is final: approved or rejected bookings
// never move again.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Payment statuses. Payment moves independently of the booking decision.
const (
	PaymentPending       = "pending"
	PaymentPaidOnline    = "paid_online"
	PaymentPaidOnArrival = "paid_on_rest_house"
	PaymentPayOnArrival  = "pay_on_rest_house"
	PaymentFailed        = "failed"
	PaymentRefunded      = "refunded"
)

var statusTransitions = map[string][]string{
	StatusPending: {StatusApproved, StatusRejected},
}

var paymentTransitions = map[string][]string{
	PaymentPending:      {PaymentPaidOnline, PaymentPayOnArrival, PaymentPaidOnArrival, PaymentFailed},
	PaymentPayOnArrival: {PaymentPaidOnArrival},
	PaymentPaidOnline:   {PaymentRefunded},
	PaymentFailed:       {PaymentPaidOnline, PaymentPayOnArrival},
}

func CanTransitionStatus(from, to string) bool {
	return slices.Contains(statusTransitions[from], to)
}

func CanTransitionPayment(from, to string) bool {
	return slices.Contains(paymentTransitions[from], to)
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentPaidOnline, PaymentPaidOnArrival, PaymentPayOnArrival, PaymentFailed, PaymentRefunded:
		return true
	}

	return false
}
