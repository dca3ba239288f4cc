// internal/dtos/registration_dtos.go
package dtos

import "github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"

type RegisterRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	FirstName   string          `json:"first_name" validate:"required"`
	LastName    string          `json:"last_name" validate:"required"`
	PhoneNumber string          `json:"phone_number,omitempty" validate:"omitempty,e164"`
	Role        models.RoleType `json:"role" validate:"required,oneof=CLIENT WORKER"`
}

type ResendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type AccountResponse struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Role            models.RoleType `json:"role"`
	IsEmailVerified bool            `json:"is_email_verified"`
}
