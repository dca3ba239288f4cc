// internal/services/otp_service.go
package services

import (
	"time"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// OTPService generates and validates one-time codes. It holds no storage;
// callers keep the code and expiry wherever the subject lives (staging
// cache entry or account re-verification record).
type OTPService interface {
	Generate() (code string, expiresAt time.Time)
	Validate(stored, provided string, expiresAt time.Time) error
}

type otpService struct {
	codeLength int
	codeTTL    time.Duration
	now        func() time.Time
}

func NewOTPService(codeLength int, codeTTL time.Duration) OTPService {
	return &otpService{
		codeLength: codeLength,
		codeTTL:    codeTTL,
		now:        time.Now,
	}
}

func (s *otpService) Generate() (string, time.Time) {
	return utils.RandomNumericString(s.codeLength), s.now().Add(s.codeTTL)
}

// Validate checks absence, then expiry, then equality — strictly in that
// order, so an expired-but-matching code is reported as code_expired.
func (s *otpService) Validate(stored, provided string, expiresAt time.Time) error {
	if stored == "" {
		return utils.ErrOTPAbsent
	}
	if s.now().After(expiresAt) {
		return utils.ErrOTPExpired
	}
	if stored != provided {
		return utils.ErrOTPMismatch
	}
	return nil
}
