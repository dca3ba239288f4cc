// internal/services/registration_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/constants"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/repositories"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// CredentialHasher is the seam to the external credential service; the
// staging flow only ever stores the opaque hash it returns.
type CredentialHasher interface {
	Hash(password string) (string, error)
}

type bcryptHasher struct{}

func (bcryptHasher) Hash(password string) (string, error) {
	return utils.HashPassword(password)
}

func NewBcryptHasher() CredentialHasher { return bcryptHasher{} }

// RegistrationService gates account creation behind OTP verification.
// Unconfirmed signups live only in the in-process staging cache, keyed by
// lowercase email; at most one entry per email.
type RegistrationService interface {
	// Stage creates (or overwrites) the pending registration for the email
	// and emails a fresh code. Fails with already_exists if the email
	// already maps to a persisted account. If the very first send fails the
	// entry is rolled back.
	Stage(ctx context.Context, req dtos.RegisterRequest, clientIP string) error

	// Resend re-issues the code on an existing entry, keeping the profile.
	Resend(ctx context.Context, email, clientIP string) error

	// Promote validates the code and creates the persisted account. The
	// entry is deleted only after account creation succeeds, so a failed
	// creation can be retried with the same code.
	Promote(ctx context.Context, email, code string) (*models.Account, error)

	// Get returns a snapshot of the entry, never the cached object itself.
	Get(email string) (*models.PendingRegistration, bool)

	// EvictExpired removes entries whose code has expired and returns how
	// many were dropped. Driven by the cron sweep.
	EvictExpired() int
}

type registrationService struct {
	accountRepo repositories.AccountRepository
	otp         OTPService
	mailer      EmailSender
	limiter     RateLimiterService
	hasher      CredentialHasher

	staging *cache.Cache
	now     func() time.Time
}

func NewRegistrationService(
	accountRepo repositories.AccountRepository,
	otp OTPService,
	mailer EmailSender,
	limiter RateLimiterService,
	hasher CredentialHasher,
) RegistrationService {
	return &registrationService{
		accountRepo: accountRepo,
		otp:         otp,
		mailer:      mailer,
		limiter:     limiter,
		hasher:      hasher,
		// Backstop TTL only; the authoritative eviction is the cron sweep
		// comparing code expiry, so an expired-but-unswept entry still
		// reports code_expired instead of not_found.
		staging: cache.New(constants.PendingRegistrationTTL, 0),
		now:     time.Now,
	}
}

func (s *registrationService) Stage(ctx context.Context, req dtos.RegisterRequest, clientIP string) error {
	email := normalizeEmail(req.Email)

	if err := s.limiter.CheckEmailRateLimits(ctx, clientIP, email); err != nil {
		return err
	}

	exists, err := s.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return utils.ErrAlreadyExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	code, expiresAt := s.otp.Generate()
	entry := &models.PendingRegistration{
		Email:            email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		PhoneNumber:      req.PhoneNumber,
		PasswordHash:     hash,
		Role:             req.Role,
		VerificationCode: code,
		CodeExpiresAt:    expiresAt,
		CreatedAt:        s.now().UTC(),
	}

	// Overwrites any prior entry for the email: repeat attempts never
	// accumulate duplicates, and only the latest code validates.
	s.staging.Set(email, entry, constants.PendingRegistrationTTL)

	if sendErr := s.mailer.SendOTPEmail(ctx, email, req.FirstName, code); sendErr != nil {
		s.staging.Delete(email)
		return sendErr
	}
	return nil
}

func (s *registrationService) Resend(ctx context.Context, email, clientIP string) error {
	email = normalizeEmail(email)

	entry, ok := s.Get(email)
	if !ok {
		return utils.ErrNotFound
	}

	if err := s.limiter.CheckEmailRateLimits(ctx, clientIP, email); err != nil {
		return err
	}

	// Get handed back a snapshot, so the re-issue mutates private state and
	// publishes a fresh entry. Cached entries are never written in place;
	// concurrent readers always see a consistent code/expiry pair.
	code, expiresAt := s.otp.Generate()
	entry.VerificationCode = code
	entry.CodeExpiresAt = expiresAt
	s.staging.Set(email, entry, constants.PendingRegistrationTTL)

	// The entry survives a failed resend; the previous registration attempt
	// already succeeded in staging it.
	return s.mailer.SendOTPEmail(ctx, email, entry.FirstName, code)
}

func (s *registrationService) Promote(ctx context.Context, email, code string) (*models.Account, error) {
	email = normalizeEmail(email)

	entry, ok := s.Get(email)
	if !ok {
		return nil, utils.ErrNotFound
	}

	if err := s.otp.Validate(entry.VerificationCode, code, entry.CodeExpiresAt); err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:              uuid.New(),
		Email:           entry.Email,
		PasswordHash:    entry.PasswordHash,
		FirstName:       entry.FirstName,
		LastName:        entry.LastName,
		PhoneNumber:     entry.PhoneNumber,
		Role:            entry.Role,
		IsEmailVerified: true,
	}

	// Keep the entry on failure so the user can retry the verification.
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.staging.Delete(email)
	return account, nil
}

func (s *registrationService) Get(email string) (*models.PendingRegistration, bool) {
	v, ok := s.staging.Get(normalizeEmail(email))
	if !ok {
		return nil, false
	}
	// go-cache guards the map, not the values. Handing out a copy keeps the
	// stored entry immutable once published.
	entry := *(v.(*models.PendingRegistration))
	return &entry, true
}

func (s *registrationService) EvictExpired() int {
	now := s.now()
	evicted := 0
	for key, item := range s.staging.Items() {
		entry, ok := item.Object.(*models.PendingRegistration)
		if !ok {
			s.staging.Delete(key)
			continue
		}
		if now.After(entry.CodeExpiresAt) {
			s.staging.Delete(key)
			evicted++
		}
	}
	return evicted
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
