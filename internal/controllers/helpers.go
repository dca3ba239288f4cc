// internal/controllers/helpers.go
package controllers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/middleware"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

var validate = validator.New()

// currentUserID pulls the authenticated subject out of the request context.
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	v, ok := r.Context().Value(middleware.ContextKeyUserID).(string)
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid userID in token", nil, err)
		return uuid.Nil, false
	}
	return id, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id in path", nil, err)
		return uuid.Nil, false
	}
	return id, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request payload", nil, err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil)
		return false
	}
	return true
}

// clientIP extracts the best client IP for rate-limit keys. Forwarding
// headers are comma-separated lists and attacker-controlled, so every
// candidate is validated before use.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for _, candidate := range strings.Split(fwd, ",") {
			candidate = strings.TrimSpace(candidate)
			if net.ParseIP(candidate) != nil {
				return candidate
			}
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" && net.ParseIP(realIP) != nil {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && net.ParseIP(host) != nil {
		return host
	}
	return r.RemoteAddr
}

// respondServiceError maps the service-layer error taxonomy onto stable
// HTTP codes the client can branch on.
func respondServiceError(w http.ResponseWriter, err error, publicMessage string) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, publicMessage, nil, err)
	case errors.Is(err, utils.ErrForbidden):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, publicMessage, nil, err)
	case errors.Is(err, utils.ErrInvalidState):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeInvalidState, publicMessage, nil, err)
	case errors.Is(err, utils.ErrAlreadyExists):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, publicMessage, nil, err)
	case errors.Is(err, utils.ErrOTPAbsent):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeOTPAbsent, publicMessage, nil, err)
	case errors.Is(err, utils.ErrOTPExpired):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeOTPExpired, publicMessage, nil, err)
	case errors.Is(err, utils.ErrOTPMismatch):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeOTPMismatch, publicMessage, nil, err)
	case errors.Is(err, utils.ErrRateLimitExceeded):
		utils.RespondErrorWithCode(w, http.StatusTooManyRequests, utils.ErrCodeRateLimitExceeded, publicMessage, nil, err)
	case errors.Is(err, utils.ErrExternalServiceFailure):
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeExternalServiceFailure, publicMessage, nil, err)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, publicMessage, nil, err)
	}
}
