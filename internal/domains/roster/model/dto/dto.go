package dto

import (
	"resthouse/internal/domains/roster/model"
	"resthouse/shared"
	gDto "resthouse/shared/dto"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type AddEmployeeIDRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=64"`
}

func (c *AddEmployeeIDRequest) ToModel(user string) model.EmployeeRoster {
	return model.EmployeeRoster{
		ID:         uuid.NewString(),
		EmployeeID: strings.TrimSpace(c.EmployeeID),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ImportEmployeeIDsRequest struct {
	EmployeeIDs []string `json:"employee_ids" validate:"required,min=1,dive,required,max=64"`
}

type ImportEmployeeIDsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type EmployeeIDResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	gDto.Metadata
}

func (r *EmployeeIDResponse) FromModel(model model.EmployeeRoster) {
	r.ID = model.ID
	r.EmployeeID = model.EmployeeID
	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeeIDsResponse struct {
	EmployeeIDs []EmployeeIDResponse `json:"employee_ids"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetEmployeeIDsResponse) FromModels(models []model.EmployeeRoster, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.EmployeeIDs = make([]EmployeeIDResponse, len(models))
	for i, mod := range models {
		r.EmployeeIDs[i].FromModel(mod)
	}
}
