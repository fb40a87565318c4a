package dto

import (
	"strings"

	"github.com/google/uuid"

	"resthouse/infras/jwt"
	userModel "resthouse/internal/domains/user/model"
	"resthouse/shared/constant"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
)

type RegisterRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=64"`
	FullName   string `json:"full_name"   validate:"required,max=120"`
	Email      string `json:"email"       validate:"required,email"`
	Phone      string `json:"phone"       validate:"required,max=20"`
	Password   string `json:"password"    validate:"required,min=8"`
	Role       string `json:"role"        validate:"required,oneof=employee ex_employee"`
	IDCard     string `json:"id_card,omitempty" validate:"omitempty,mimetypes=image/png image/jpeg application/pdf,maxfilesize=5"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword, idCardURL string) userModel.User {
	return userModel.User{
		ID:           uuid.NewString(),
		EmployeeID:   strings.TrimSpace(r.EmployeeID),
		FullName:     r.FullName,
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:        r.Phone,
		PasswordHash: hashedPassword,
		Role:         r.Role,
		Status:       userModel.StatusApproved,
		IDCardURL:    idCardURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.EmployeeID,
			ModifiedBy: r.EmployeeID,
		},
	}
}

type RegisterGuestRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required,max=20"`
	Password string `json:"password"  validate:"required,min=8"`
	IDCard   string `json:"id_card,omitempty" validate:"omitempty,mimetypes=image/png image/jpeg application/pdf,maxfilesize=5"`
}

func (r *RegisterGuestRequest) ToUserModel(hashedPassword, idCardURL string) userModel.User {
	email := strings.ToLower(strings.TrimSpace(r.Email))

	return userModel.User{
		ID:           uuid.NewString(),
		FullName:     r.FullName,
		Email:        email,
		Phone:        r.Phone,
		PasswordHash: hashedPassword,
		Role:         constant.RoleGuest,
		Status:       userModel.StatusPending,
		IDCardURL:    idCardURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  email,
			ModifiedBy: email,
		},
	}
}

// LoginRequest accepts either the account email or an employee ID.
type LoginRequest struct {
	Email      string `json:"email,omitempty"       validate:"omitempty,email"`
	EmployeeID string `json:"employee_id,omitempty" validate:"omitempty,max=64"`
	Password   string `json:"password"              validate:"required"`
}

type CheckEmployeeResponse struct {
	Authorized bool `json:"authorized"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

// UserResponse is the slim profile returned alongside tokens and from /me.
type UserResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id,omitempty"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

func (u *UserResponse) FromModel(model userModel.User) {
	u.ID = model.ID
	u.EmployeeID = model.EmployeeID
	u.FullName = model.FullName
	u.Email = model.Email
	u.Phone = model.Phone
	u.Role = model.Role
	u.Status = model.Status
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
