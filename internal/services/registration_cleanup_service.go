// internal/services/registration_cleanup_service.go
package services

import (
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// RegistrationCleanupService handles purging staging entries whose
// verification code has expired.
type RegistrationCleanupService interface {
	CleanupExpired() error
}

type registrationCleanupService struct {
	registration RegistrationService
}

func NewRegistrationCleanupService(registration RegistrationService) RegistrationCleanupService {
	return &registrationCleanupService{registration: registration}
}

// CleanupExpired runs one sweep and logs the result. Scheduled on the
// shared cron for the lifetime of the process.
func (s *registrationCleanupService) CleanupExpired() error {
	evicted := s.registration.EvictExpired()
	if evicted > 0 {
		utils.Logger.Infof("Staging-cache sweep evicted %d expired registration(s)", evicted)
	}
	return nil
}
