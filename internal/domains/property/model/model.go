package model

import (
	"github.com/lib/pq"

	"resthouse/shared/model"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID                 = "id"
	FieldZoneID             = "zone_id"
	FieldName               = "name"
	FieldLocation           = "location"
	FieldVVIPRooms          = "vvip_rooms"
	FieldVIPRooms           = "vip_rooms"
	FieldGeneralRooms       = "general_rooms"
	FieldOfficerName        = "officer_name"
	FieldOfficerDesignation = "officer_designation"
	FieldOfficerContact     = "officer_contact"
	FieldCaretakerName      = "caretaker_name"
	FieldCaretakerContact   = "caretaker_contact"
	FieldUPIID              = "upi_id"
	FieldImages             = "images"
)

type Property struct {
	ID                 string         `db:"id"`
	ZoneID             string         `db:"zone_id"`
	Name               string         `db:"name"`
	Location           string         `db:"location"`
	VVIPRooms          int            `db:"vvip_rooms"`
	VIPRooms           int            `db:"vip_rooms"`
	GeneralRooms       int            `db:"general_rooms"`
	OfficerName        string         `db:"officer_name"`
	OfficerDesignation string         `db:"officer_designation"`
	OfficerContact     string         `db:"officer_contact"`
	CaretakerName      string         `db:"caretaker_name"`
	CaretakerContact   string         `db:"caretaker_contact"`
	UPIID              string         `db:"upi_id"`
	Images             pq.StringArray `db:"images"`
	model.Metadata
}

// TotalRooms is the advertised capacity across all room classes.
func (p Property) TotalRooms() int {
	return p.VVIPRooms + p.VIPRooms + p.GeneralRooms
}
