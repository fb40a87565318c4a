package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resthouse/internal/domains/booking/model"
	pricingModel "resthouse/internal/domains/pricing/model"
)

func TestUserSnapshotRoundTrip(t *testing.T) {
	snapshot := model.UserSnapshot{
		ID:         "user-1",
		EmployeeID: "EMP-001",
		FullName:   "John Doe",
		Email:      "john@example.com",
		Role:       "employee",
	}

	value, err := snapshot.Value()
	assert.NoError(t, err)

	var decoded model.UserSnapshot
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, snapshot, decoded)
}

func TestPropertySnapshotScanString(t *testing.T) {
	var snapshot model.PropertySnapshot

	err := snapshot.Scan(`{"id":"property-1","zone_id":"zone-1","name":"Hill View Rest House","location":"Ridge Road","upi_id":"hillview@upi","officer":{"name":"R. Negi","designation":"Estate Officer","contact":"9000000001"},"caretaker":{"name":"S. Thakur","contact":"9000000002"}}`)

	assert.NoError(t, err)
	assert.Equal(t, "Hill View Rest House", snapshot.Name)
	assert.Equal(t, "hillview@upi", snapshot.UPIID)
	assert.Equal(t, "Estate Officer", snapshot.Officer.Designation)
	assert.Equal(t, "S. Thakur", snapshot.Caretaker.Name)
}

func TestPropertySnapshotRoundTrip(t *testing.T) {
	snapshot := model.PropertySnapshot{
		ID:        "property-1",
		ZoneID:    "zone-1",
		Name:      "Hill View Rest House",
		Location:  "Ridge Road",
		UPIID:     "hillview@upi",
		Officer:   model.ContactSnapshot{Name: "R. Negi", Designation: "Estate Officer", Contact: "9000000001"},
		Caretaker: model.ContactSnapshot{Name: "S. Thakur", Contact: "9000000002"},
	}

	value, err := snapshot.Value()
	assert.NoError(t, err)

	var decoded model.PropertySnapshot
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, snapshot, decoded)
}

func TestSnapshotScanRejectsUnknownType(t *testing.T) {
	var snapshot model.UserSnapshot

	assert.Error(t, snapshot.Scan(42))
}

func TestSnapshotScanNil(t *testing.T) {
	var snapshot model.UserSnapshot

	assert.NoError(t, snapshot.Scan(nil))
	assert.Empty(t, snapshot.ID)
}

func TestPricingRoundTrip(t *testing.T) {
	pricing := model.FromQuote(pricingModel.Quote{
		Hours:        24,
		Days:         1,
		TotalGuests:  2,
		RatePerNight: 1000,
		BaseAmount:   2000,
		GSTAmount:    360,
		TotalAmount:  2360,
	})

	value, err := pricing.Value()
	assert.NoError(t, err)

	var decoded model.Pricing
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, pricing, decoded)
}
