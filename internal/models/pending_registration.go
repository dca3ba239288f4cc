// internal/models/pending_registration.go

package models

import "time"

// PendingRegistration holds unconfirmed signup data keyed by email in the
// in-process staging cache. It is never persisted; a restart losing these
// entries is accepted behavior.
type PendingRegistration struct {
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  string
	PasswordHash string
	Role         RoleType

	VerificationCode string
	CodeExpiresAt    time.Time
	CreatedAt        time.Time
}
