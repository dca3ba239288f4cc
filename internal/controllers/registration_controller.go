// internal/controllers/registration_controller.go
package controllers

import (
	"net/http"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/services"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type RegistrationController struct {
	registrationService services.RegistrationService
}

func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// Register stages the signup and emails a verification code. No account is
// persisted until the code is verified.
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.registrationService.Stage(r.Context(), req, clientIP(r)); err != nil {
		respondServiceError(w, err, "Failed to start registration")
		return
	}

	utils.RespondWithJSON(w, http.StatusAccepted, map[string]string{
		"message": "Verification code sent",
	})
}

func (c *RegistrationController) ResendCode(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResendCodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.registrationService.Resend(r.Context(), req.Email, clientIP(r)); err != nil {
		respondServiceError(w, err, "Failed to resend verification code")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Verification code sent",
	})
}

func (c *RegistrationController) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyCodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	account, err := c.registrationService.Promote(r.Context(), req.Email, req.Code)
	if err != nil {
		respondServiceError(w, err, "Verification failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.AccountResponse{
		ID:              account.ID.String(),
		Email:           account.Email,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		Role:            account.Role,
		IsEmailVerified: account.IsEmailVerified,
	})
}
