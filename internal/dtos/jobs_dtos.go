// internal/dtos/jobs_dtos.go
package dtos

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,max=140"`
	Description string `json:"description" validate:"required"`
	Budget      int64  `json:"budget" validate:"required,gt=0"`
}
