package dto

import (
	"strings"

	"github.com/google/uuid"

	"resthouse/internal/domains/zone/model"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
)

type CreateZoneRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

func (r *CreateZoneRequest) ToModel(username string) model.Zone {
	return model.Zone{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(r.Name),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateZoneRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type ZoneResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (z *ZoneResponse) FromModel(model model.Zone) {
	z.ID = model.ID
	z.Name = model.Name
}

type GetZonesResponse struct {
	Zones []ZoneResponse `json:"zones"`
}

func (r *GetZonesResponse) FromModels(models []model.Zone) {
	r.Zones = make([]ZoneResponse, len(models))
	for i, mod := range models {
		r.Zones[i].FromModel(mod)
	}
}
