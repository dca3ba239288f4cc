// internal/models/contract.go

package models

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatusType string

const (
	ContractStatusActive    ContractStatusType = "ACTIVE"
	ContractStatusCompleted ContractStatusType = "COMPLETED"
	ContractStatusCancelled ContractStatusType = "CANCELLED"
	ContractStatusDisputed  ContractStatusType = "DISPUTED"
)

type PaymentStatusType string

const (
	PaymentStatusPending  PaymentStatusType = "PENDING"
	PaymentStatusEscrowed PaymentStatusType = "ESCROWED"
	PaymentStatusReleased PaymentStatusType = "RELEASED"
	PaymentStatusRefunded PaymentStatusType = "REFUNDED"
)

type Deliverable struct {
	ID          uuid.UUID `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	FileURL     string    `bson:"file_url,omitempty" json:"file_url,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}

type Milestone struct {
	ID        uuid.UUID  `bson:"id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Amount    int64      `bson:"amount" json:"amount"`
	DueDate   *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Completed bool       `bson:"completed" json:"completed"`
}

// Contract for the contracts collection. Created exactly once per accepted
// proposal. COMPLETED status and RELEASED payment status are set together.
type Contract struct {
	ID            uuid.UUID          `bson:"_id" json:"id"`
	JobID         uuid.UUID          `bson:"job_id" json:"job_id"`
	ClientID      uuid.UUID          `bson:"client_id" json:"client_id"`
	WorkerID      uuid.UUID          `bson:"worker_id" json:"worker_id"`
	ProposalID    uuid.UUID          `bson:"proposal_id" json:"proposal_id"`
	TotalAmount   int64              `bson:"total_amount" json:"total_amount"`
	Status        ContractStatusType `bson:"status" json:"status"`
	PaymentStatus PaymentStatusType  `bson:"payment_status" json:"payment_status"`
	Deliverables  []Deliverable      `bson:"deliverables" json:"deliverables"`
	Milestones    []Milestone        `bson:"milestones" json:"milestones"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
	CompletedAt   *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}
