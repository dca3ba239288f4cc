// internal/models/proposal.go

package models

import (
	"time"

	"github.com/google/uuid"
)

type ProposalStatusType string

const (
	ProposalStatusPending   ProposalStatusType = "PENDING"
	ProposalStatusAccepted  ProposalStatusType = "ACCEPTED"
	ProposalStatusRejected  ProposalStatusType = "REJECTED"
	ProposalStatusWithdrawn ProposalStatusType = "WITHDRAWN"
)

// Proposal for the proposals collection. (job_id, worker_id) carries a
// unique index: one submission per worker per job is a store invariant,
// not a procedural pre-check.
type Proposal struct {
	ID          uuid.UUID          `bson:"_id" json:"id"`
	JobID       uuid.UUID          `bson:"job_id" json:"job_id"`
	WorkerID    uuid.UUID          `bson:"worker_id" json:"worker_id"`
	CoverLetter string             `bson:"cover_letter" json:"cover_letter"`
	BidAmount   int64              `bson:"bid_amount" json:"bid_amount"`
	Status      ProposalStatusType `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
