package dto

import (
	"time"

	"github.com/google/uuid"

	"resthouse/internal/domains/booking/model"
	pricingModel "resthouse/internal/domains/pricing/model"
	propertyModel "resthouse/internal/domains/property/model"
	userModel "resthouse/internal/domains/user/model"
	"resthouse/shared"
	gDto "resthouse/shared/dto"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
)

type CreateBookingRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	Category   string `json:"category"    validate:"required,oneof=general vip vvip"`
	CheckIn    string `json:"check_in"    validate:"required"`
	CheckOut   string `json:"check_out"   validate:"required"`
	Adults     int    `json:"adults"      validate:"required,gte=1"`
	Children   int    `json:"children"    validate:"gte=0"`
	Purpose    string `json:"purpose"     validate:"omitempty,max=255"`
}

func snapshotUser(user userModel.User) model.UserSnapshot {
	return model.UserSnapshot{
		ID:         user.ID,
		EmployeeID: user.EmployeeID,
		FullName:   user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
	}
}

func snapshotProperty(property propertyModel.Property) model.PropertySnapshot {
	return model.PropertySnapshot{
		ID:       property.ID,
		ZoneID:   property.ZoneID,
		Name:     property.Name,
		Location: property.Location,
		UPIID:    property.UPIID,
		Officer: model.ContactSnapshot{
			Name:        property.OfficerName,
			Designation: property.OfficerDesignation,
			Contact:     property.OfficerContact,
		},
		Caretaker: model.ContactSnapshot{
			Name:    property.CaretakerName,
			Contact: property.CaretakerContact,
		},
	}
}

// Stay parses the check-in and check-out instants.
func (r *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(time.RFC3339, r.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = time.Parse(time.RFC3339, r.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

func (r *CreateBookingRequest) ToModel(user userModel.User, property propertyModel.Property, checkIn, checkOut time.Time, quote pricingModel.Quote) model.Booking {
	return model.Booking{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		PropertyID:       property.ID,
		UserSnapshot:     snapshotUser(user),
		PropertySnapshot: snapshotProperty(property),
		Category:         r.Category,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Adults:           r.Adults,
		Children:         r.Children,
		Purpose:          r.Purpose,
		Pricing:          model.FromQuote(quote),
		Status:           model.StatusPending,
		PaymentStatus:    model.PaymentPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user.ID,
			ModifiedBy: user.ID,
		},
	}
}

// AdminCreateBookingRequest records a booking taken over the counter. It is
// approved immediately and may carry a payment status straight away.
type AdminCreateBookingRequest struct {
	UserID        string `json:"user_id"        validate:"required,uuid"`
	PropertyID    string `json:"property_id"    validate:"required,uuid"`
	Category      string `json:"category"       validate:"required,oneof=general vip vvip"`
	CheckIn       string `json:"check_in"       validate:"required"`
	CheckOut      string `json:"check_out"      validate:"required"`
	Adults        int    `json:"adults"         validate:"required,gte=1"`
	Children      int    `json:"children"       validate:"gte=0"`
	Purpose       string `json:"purpose"        validate:"omitempty,max=255"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending paid_online paid_on_rest_house pay_on_rest_house"`
}

func (r *AdminCreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(time.RFC3339, r.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = time.Parse(time.RFC3339, r.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

func (r *AdminCreateBookingRequest) ToModel(admin string, user userModel.User, property propertyModel.Property, checkIn, checkOut time.Time, quote pricingModel.Quote) model.Booking {
	paymentStatus := r.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = model.PaymentPending
	}

	return model.Booking{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		PropertyID:       property.ID,
		UserSnapshot:     snapshotUser(user),
		PropertySnapshot: snapshotProperty(property),
		Category:         r.Category,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Adults:           r.Adults,
		Children:         r.Children,
		Purpose:          r.Purpose,
		Pricing:          model.FromQuote(quote),
		Status:           model.StatusApproved,
		PaymentStatus:    paymentStatus,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  admin,
			ModifiedBy: admin,
		},
	}
}

type QuoteRequest struct {
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Adults   int    `json:"adults"    validate:"required,gte=1"`
	Children int    `json:"children"  validate:"gte=0"`
}

func (r *QuoteRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(time.RFC3339, r.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = time.Parse(time.RFC3339, r.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

type BookingResponse struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"user_id"`
	PropertyID       string                 `json:"property_id"`
	UserSnapshot     model.UserSnapshot     `json:"user"`
	PropertySnapshot model.PropertySnapshot `json:"property"`
	Category         string                 `json:"category"`
	CheckIn          string                 `json:"check_in"`
	CheckOut         string                 `json:"check_out"`
	Adults           int                    `json:"adults"`
	Children         int                    `json:"children"`
	Purpose          string                 `json:"purpose,omitempty"`
	Pricing          pricingModel.Quote     `json:"pricing"`
	Status           string                 `json:"status"`
	PaymentStatus    string                 `json:"payment_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.PropertyID = mod.PropertyID
	r.UserSnapshot = mod.UserSnapshot
	r.PropertySnapshot = mod.PropertySnapshot
	r.Category = mod.Category
	r.CheckIn = mod.CheckIn.Format(time.RFC3339)
	r.CheckOut = mod.CheckOut.Format(time.RFC3339)
	r.Adults = mod.Adults
	r.Children = mod.Children
	r.Purpose = mod.Purpose
	r.Pricing = mod.Pricing.Quote
	r.Status = mod.Status
	r.PaymentStatus = mod.PaymentStatus
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
