// internal/dtos/proposals_dtos.go
package dtos

import "github.com/google/uuid"

type SubmitProposalRequest struct {
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	CoverLetter string    `json:"cover_letter" validate:"required"`
	BidAmount   int64     `json:"bid_amount" validate:"required,gt=0"`
}
