package dto

import (
	"strings"

	"github.com/google/uuid"

	"resthouse/infras/jwt"
	"resthouse/internal/domains/admin/model"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
)

type RegisterAdminRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required,max=20"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=superadmin admin manager"`
}

func (r *RegisterAdminRequest) ToModel(createdBy, hashedPassword string) model.Admin {
	return model.Admin{
		ID:           uuid.NewString(),
		FullName:     r.FullName,
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:        r.Phone,
		PasswordHash: hashedPassword,
		Role:         r.Role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type LoginAdminRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

func (a *AdminResponse) FromModel(model model.Admin) {
	a.ID = model.ID
	a.FullName = model.FullName
	a.Email = model.Email
	a.Phone = model.Phone
	a.Role = model.Role
}

type LoginAdminResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	Admin        AdminResponse `json:"admin"`
}

func (l *LoginAdminResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}
