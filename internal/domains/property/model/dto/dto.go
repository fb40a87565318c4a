package dto

import (
	"strings"

	"github.com/google/uuid"

	"resthouse/internal/domains/property/model"
	"resthouse/shared"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
)

type CreatePropertyRequest struct {
	ZoneID             string   `json:"zone_id"             validate:"required,uuid"`
	Name               string   `json:"name"                validate:"required,max=120"`
	Location           string   `json:"location"            validate:"required,max=255"`
	VVIPRooms          int      `json:"vvip_rooms"          validate:"gte=0"`
	VIPRooms           int      `json:"vip_rooms"           validate:"gte=0"`
	GeneralRooms       int      `json:"general_rooms"       validate:"gte=0"`
	OfficerName        string   `json:"officer_name"        validate:"max=120"`
	OfficerDesignation string   `json:"officer_designation" validate:"max=120"`
	OfficerContact     string   `json:"officer_contact"     validate:"max=20"`
	CaretakerName      string   `json:"caretaker_name"      validate:"max=120"`
	CaretakerContact   string   `json:"caretaker_contact"   validate:"max=20"`
	UPIID              string   `json:"upi_id"              validate:"max=64"`
	Images             []string `json:"images,omitempty"    validate:"omitempty,max=10,dive,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

func (r *CreatePropertyRequest) ToModel(username string, imageURLs []string) model.Property {
	return model.Property{
		ID:                 uuid.NewString(),
		ZoneID:             r.ZoneID,
		Name:               strings.TrimSpace(r.Name),
		Location:           r.Location,
		VVIPRooms:          r.VVIPRooms,
		VIPRooms:           r.VIPRooms,
		GeneralRooms:       r.GeneralRooms,
		OfficerName:        r.OfficerName,
		OfficerDesignation: r.OfficerDesignation,
		OfficerContact:     r.OfficerContact,
		CaretakerName:      r.CaretakerName,
		CaretakerContact:   r.CaretakerContact,
		UPIID:              r.UPIID,
		Images:             imageURLs,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

// UpdatePropertyRequest carries only the fields being changed. Room counts
// use pointers so zero is distinguishable from absent.
type UpdatePropertyRequest struct {
	ZoneID             *string  `json:"zone_id,omitempty"             validate:"omitempty,uuid"`
	Name               *string  `json:"name,omitempty"                validate:"omitempty,max=120"`
	Location           *string  `json:"location,omitempty"            validate:"omitempty,max=255"`
	VVIPRooms          *int     `json:"vvip_rooms,omitempty"          validate:"omitempty,gte=0"`
	VIPRooms           *int     `json:"vip_rooms,omitempty"           validate:"omitempty,gte=0"`
	GeneralRooms       *int     `json:"general_rooms,omitempty"       validate:"omitempty,gte=0"`
	OfficerName        *string  `json:"officer_name,omitempty"        validate:"omitempty,max=120"`
	OfficerDesignation *string  `json:"officer_designation,omitempty" validate:"omitempty,max=120"`
	OfficerContact     *string  `json:"officer_contact,omitempty"     validate:"omitempty,max=20"`
	CaretakerName      *string  `json:"caretaker_name,omitempty"      validate:"omitempty,max=120"`
	CaretakerContact   *string  `json:"caretaker_contact,omitempty"   validate:"omitempty,max=20"`
	UPIID              *string  `json:"upi_id,omitempty"              validate:"omitempty,max=64"`
	Images             []string `json:"images,omitempty"              validate:"omitempty,max=10,dive,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

// Fields builds the partial update map for the columns actually provided.
func (r *UpdatePropertyRequest) Fields() map[string]any {
	fields := make(map[string]any)

	set := func(column string, value any, present bool) {
		if present {
			fields[column] = value
		}
	}

	set(model.FieldZoneID, deref(r.ZoneID), r.ZoneID != nil)
	set(model.FieldName, strings.TrimSpace(deref(r.Name)), r.Name != nil)
	set(model.FieldLocation, deref(r.Location), r.Location != nil)
	set(model.FieldOfficerName, deref(r.OfficerName), r.OfficerName != nil)
	set(model.FieldOfficerDesignation, deref(r.OfficerDesignation), r.OfficerDesignation != nil)
	set(model.FieldOfficerContact, deref(r.OfficerContact), r.OfficerContact != nil)
	set(model.FieldCaretakerName, deref(r.CaretakerName), r.CaretakerName != nil)
	set(model.FieldCaretakerContact, deref(r.CaretakerContact), r.CaretakerContact != nil)
	set(model.FieldUPIID, deref(r.UPIID), r.UPIID != nil)

	if r.VVIPRooms != nil {
		fields[model.FieldVVIPRooms] = *r.VVIPRooms
	}

	if r.VIPRooms != nil {
		fields[model.FieldVIPRooms] = *r.VIPRooms
	}

	if r.GeneralRooms != nil {
		fields[model.FieldGeneralRooms] = *r.GeneralRooms
	}

	return fields
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

type PropertyResponse struct {
	ID                 string   `json:"id"`
	ZoneID             string   `json:"zone_id"`
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	VVIPRooms          int      `json:"vvip_rooms"`
	VIPRooms           int      `json:"vip_rooms"`
	GeneralRooms       int      `json:"general_rooms"`
	TotalRooms         int      `json:"total_rooms"`
	OfficerName        string   `json:"officer_name,omitempty"`
	OfficerDesignation string   `json:"officer_designation,omitempty"`
	OfficerContact     string   `json:"officer_contact,omitempty"`
	CaretakerName      string   `json:"caretaker_name,omitempty"`
	CaretakerContact   string   `json:"caretaker_contact,omitempty"`
	UPIID              string   `json:"upi_id,omitempty"`
	Images             []string `json:"images,omitempty"`
}

func (p *PropertyResponse) FromModel(mod model.Property) {
	p.ID = mod.ID
	p.ZoneID = mod.ZoneID
	p.Name = mod.Name
	p.Location = mod.Location
	p.VVIPRooms = mod.VVIPRooms
	p.VIPRooms = mod.VIPRooms
	p.GeneralRooms = mod.GeneralRooms
	p.TotalRooms = mod.TotalRooms()
	p.OfficerName = mod.OfficerName
	p.OfficerDesignation = mod.OfficerDesignation
	p.OfficerContact = mod.OfficerContact
	p.CaretakerName = mod.CaretakerName
	p.CaretakerContact = mod.CaretakerContact
	p.UPIID = mod.UPIID
	p.Images = mod.Images
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
