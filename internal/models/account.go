// internal/models/account.go

package models

import (
	"time"

	"github.com/google/uuid"
)

type RoleType string

const (
	RoleClient RoleType = "CLIENT"
	RoleWorker RoleType = "WORKER"
	RoleAdmin  RoleType = "ADMIN"
)

// Account for the accounts collection. Email carries a unique index.
// Monetary fields are integer cents.
type Account struct {
	ID              uuid.UUID `bson:"_id" json:"id"`
	Email           string    `bson:"email" json:"email"`
	PasswordHash    string    `bson:"password_hash" json:"-"`
	FirstName       string    `bson:"first_name" json:"first_name"`
	LastName        string    `bson:"last_name" json:"last_name"`
	PhoneNumber     string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Role            RoleType  `bson:"role" json:"role"`
	IsEmailVerified bool      `bson:"is_email_verified" json:"is_email_verified"`

	// Aggregate statistics updated on contract completion.
	CompletedJobs int   `bson:"completed_jobs" json:"completed_jobs"`
	TotalEarnings int64 `bson:"total_earnings" json:"total_earnings"`
	TotalSpent    int64 `bson:"total_spent" json:"total_spent"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
