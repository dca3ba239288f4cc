// internal/dtos/contracts_dtos.go
package dtos

import "time"

type SubmitDeliverableRequest struct {
	Title       string `json:"title" validate:"required,max=140"`
	FileURL     string `json:"file_url,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

type AddMilestoneRequest struct {
	Title   string     `json:"title" validate:"required,max=140"`
	Amount  int64      `json:"amount" validate:"required,gt=0"`
	DueDate *time.Time `json:"due_date,omitempty"`
}
