// internal/models/job.go

package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatusType string

const (
	JobStatusOpen       JobStatusType = "OPEN"
	JobStatusInProgress JobStatusType = "IN_PROGRESS"
	JobStatusCompleted  JobStatusType = "COMPLETED"
	JobStatusCancelled  JobStatusType = "CANCELLED"
)

// Job for the jobs collection. HiredWorkerID is set exactly once, when the
// status leaves OPEN.
type Job struct {
	ID            uuid.UUID     `bson:"_id" json:"id"`
	ClientID      uuid.UUID     `bson:"client_id" json:"client_id"`
	Title         string        `bson:"title" json:"title"`
	Description   string        `bson:"description" json:"description"`
	Budget        int64         `bson:"budget" json:"budget"`
	Status        JobStatusType `bson:"status" json:"status"`
	HiredWorkerID *uuid.UUID    `bson:"hired_worker_id,omitempty" json:"hired_worker_id,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}
