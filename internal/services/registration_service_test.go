// internal/services/registration_service_test.go
package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type registrationHarness struct {
	svc      *registrationService
	accounts *fakeAccountRepo
	mailer   *fakeMailer
	limiter  *fakeLimiter
	otp      *otpService
	clock    *time.Time
}

func newRegistrationHarness(t *testing.T) *registrationHarness {
	t.Helper()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &start
	tick := func() time.Time { return *clock }

	otp := NewOTPService(6, 10*time.Minute).(*otpService)
	otp.now = tick

	accounts := newFakeAccountRepo()
	mailer := &fakeMailer{}
	limiter := &fakeLimiter{}

	svc := NewRegistrationService(accounts, otp, mailer, limiter, fakeHasher{}).(*registrationService)
	svc.now = tick

	return &registrationHarness{
		svc:      svc,
		accounts: accounts,
		mailer:   mailer,
		limiter:  limiter,
		otp:      otp,
		clock:    clock,
	}
}

func (h *registrationHarness) advance(d time.Duration) {
	*h.clock = h.clock.Add(d)
}

func registerRequest(email string) dtos.RegisterRequest {
	return dtos.RegisterRequest{
		Email:     email,
		Password:  "s3cret-password",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleWorker,
	}
}

func TestStageAndPromote(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("Ada@Example.com"), "10.0.0.1"))

	// Keyed by normalized email; nothing persisted yet.
	entry, ok := h.svc.Get("ada@example.com")
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", entry.Email)
	assert.Equal(t, "hashed:s3cret-password", entry.PasswordHash)
	assert.Empty(t, h.accounts.accounts)

	require.Len(t, h.mailer.sent, 1)
	assert.Equal(t, entry.VerificationCode, h.mailer.sent[0].Code)

	account, err := h.svc.Promote(ctx, "ada@example.com", entry.VerificationCode)
	require.NoError(t, err)
	assert.True(t, account.IsEmailVerified)
	assert.Equal(t, models.RoleWorker, account.Role)

	stored, err := h.accounts.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, stored.ID)

	_, ok = h.svc.Get("ada@example.com")
	assert.False(t, ok, "entry must be deleted after promotion")
}

func TestStageRejectsExistingAccount(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.accounts.Create(ctx, &models.Account{Email: "ada@example.com"}))

	err := h.svc.Stage(ctx, registerRequest("ada@example.com"), "10.0.0.1")
	assert.ErrorIs(t, err, utils.ErrAlreadyExists)
	assert.Empty(t, h.mailer.sent)
}

func TestStageRateLimited(t *testing.T) {
	h := newRegistrationHarness(t)
	h.limiter.err = utils.ErrRateLimitExceeded

	err := h.svc.Stage(context.Background(), registerRequest("ada@example.com"), "10.0.0.1")
	assert.ErrorIs(t, err, utils.ErrRateLimitExceeded)
	assert.Empty(t, h.mailer.sent)
	_, ok := h.svc.Get("ada@example.com")
	assert.False(t, ok)
}

func TestStageFirstSendFailureRollsBack(t *testing.T) {
	h := newRegistrationHarness(t)
	h.mailer.sendErr = errors.New("smtp down")

	err := h.svc.Stage(context.Background(), registerRequest("ada@example.com"), "10.0.0.1")
	require.Error(t, err)

	_, ok := h.svc.Get("ada@example.com")
	assert.False(t, ok, "failed first send must not leave a staged entry")
}

func TestRestageOverwrites(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("ada@example.com"), "10.0.0.1"))
	first, _ := h.svc.Get("ada@example.com")
	firstCode := first.VerificationCode

	req := registerRequest("ada@example.com")
	req.FirstName = "Grace"
	require.NoError(t, h.svc.Stage(ctx, req, "10.0.0.1"))

	entry, ok := h.svc.Get("ada@example.com")
	require.True(t, ok)
	assert.Equal(t, "Grace", entry.FirstName, "restaging replaces the profile")

	// Only the latest code validates.
	if firstCode != entry.VerificationCode {
		_, err := h.svc.Promote(ctx, "ada@example.com", firstCode)
		assert.ErrorIs(t, err, utils.ErrOTPMismatch)
	}
	_, err := h.svc.Promote(ctx, "ada@example.com", entry.VerificationCode)
	assert.NoError(t, err)
}

func TestResendReissuesCode(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("ada@example.com"), "10.0.0.1"))

	h.advance(9 * time.Minute)
	require.NoError(t, h.svc.Resend(ctx, "ada@example.com", "10.0.0.1"))

	entry, ok := h.svc.Get("ada@example.com")
	require.True(t, ok)
	assert.Equal(t, "Ada", entry.FirstName, "resend keeps the staged profile")
	assert.Equal(t, h.clock.Add(10*time.Minute), entry.CodeExpiresAt)
	assert.Equal(t, 2, h.mailer.sentCount())
}

func TestResendUnknownEmail(t *testing.T) {
	h := newRegistrationHarness(t)

	err := h.svc.Resend(context.Background(), "nobody@example.com", "10.0.0.1")
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, 0, h.limiter.callCount(), "no limiter spend for unknown emails")
}

func TestPromoteWrongCodeKeepsEntry(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("ada@example.com"), "10.0.0.1"))

	_, err := h.svc.Promote(ctx, "ada@example.com", "000000")
	assert.ErrorIs(t, err, utils.ErrOTPMismatch)

	_, ok := h.svc.Get("ada@example.com")
	assert.True(t, ok, "a failed attempt must not consume the entry")
}

func TestPromoteExpiredCode(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("ada@example.com"), "10.0.0.1"))
	entry, _ := h.svc.Get("ada@example.com")

	h.advance(11 * time.Minute)
	_, err := h.svc.Promote(ctx, "ada@example.com", entry.VerificationCode)
	assert.ErrorIs(t, err, utils.ErrOTPExpired)
}

func TestPromoteUnknownEmail(t *testing.T) {
	h := newRegistrationHarness(t)

	_, err := h.svc.Promote(context.Background(), "nobody@example.com", "123456")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestPromoteCreateFailureKeepsEntryForRetry(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("ada@example.com"), "10.0.0.1"))
	entry, _ := h.svc.Get("ada@example.com")

	h.accounts.createErr = errors.New("write concern failed")
	_, err := h.svc.Promote(ctx, "ada@example.com", entry.VerificationCode)
	require.Error(t, err)

	// Same code works once the store recovers.
	h.accounts.createErr = nil
	account, err := h.svc.Promote(ctx, "ada@example.com", entry.VerificationCode)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", account.Email)
}

func TestConcurrentResendAndPromote(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("ada@example.com"), "10.0.0.1"))

	// Resends re-issue codes while other goroutines read and verify the
	// entry. Stored entries are immutable once published, so the race
	// detector must stay quiet and every snapshot must pair a code with its
	// own expiry.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = h.svc.Resend(ctx, "ada@example.com", "10.0.0.1")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			if entry, ok := h.svc.Get("ada@example.com"); ok {
				assert.Len(t, entry.VerificationCode, 6)
				assert.False(t, entry.CodeExpiresAt.IsZero())
			}
			_, _ = h.svc.Promote(ctx, "ada@example.com", "not-a-code")
		}
	}()
	wg.Wait()

	// The entry survives the churn and the latest code still promotes.
	entry, ok := h.svc.Get("ada@example.com")
	require.True(t, ok)
	_, err := h.svc.Promote(ctx, "ada@example.com", entry.VerificationCode)
	require.NoError(t, err)
}

func TestGetReturnsSnapshot(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("ada@example.com"), "10.0.0.1"))

	first, ok := h.svc.Get("ada@example.com")
	require.True(t, ok)
	first.VerificationCode = "tampered"

	// Mutating the returned entry must not touch the cached one.
	second, ok := h.svc.Get("ada@example.com")
	require.True(t, ok)
	assert.NotEqual(t, "tampered", second.VerificationCode)
}

func TestEvictExpired(t *testing.T) {
	h := newRegistrationHarness(t)
	ctx := context.Background()

	require.NoError(t, h.svc.Stage(ctx, registerRequest("stale@example.com"), "10.0.0.1"))
	h.advance(8 * time.Minute)
	require.NoError(t, h.svc.Stage(ctx, registerRequest("fresh@example.com"), "10.0.0.1"))

	// stale's code is now 12 minutes old, fresh's only 4.
	h.advance(4 * time.Minute)
	assert.Equal(t, 1, h.svc.EvictExpired())

	_, ok := h.svc.Get("stale@example.com")
	assert.False(t, ok)
	_, ok = h.svc.Get("fresh@example.com")
	assert.True(t, ok)
}
