package dto

import (
	"resthouse/internal/domains/user/model"
	"resthouse/shared"
	gDto "resthouse/shared/dto"
)

// List filter values accepted by the admin users endpoint.
const (
	ListFilterAll      = "ALL"
	ListFilterPending  = "PENDING"
	ListFilterRejected = "REJECTED"
	ListFilterEmployee = "EMPLOYEE"
	ListFilterGuest    = "GUEST"
)

type UserResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id,omitempty"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	IDCardURL  string `json:"id_card_url,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.EmployeeID = model.EmployeeID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.Status = model.Status
	r.IDCardURL = model.IDCardURL
	r.Metadata.FromModel(model.Metadata)
}

// UserStats are the dashboard tile counts shown next to the user list.
type UserStats struct {
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
	Employee int `json:"employee"`
	Guest    int `json:"guest"`
	All      int `json:"all"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	Stats     UserStats      `json:"stats"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

type GetPendingGuestsResponse struct {
	Guests []UserResponse `json:"guests"`
}

func (r *GetPendingGuestsResponse) FromModels(models []model.User) {
	r.Guests = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
