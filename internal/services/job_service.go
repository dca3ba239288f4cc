// internal/services/job_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/repositories"
)

type JobService interface {
	CreateJob(ctx context.Context, clientID uuid.UUID, req dtos.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListOpenJobs(ctx context.Context, limit int64) ([]models.Job, error)
}

type jobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) CreateJob(ctx context.Context, clientID uuid.UUID, req dtos.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		ID:          uuid.New(),
		ClientID:    clientID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Status:      models.JobStatusOpen,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobService) ListOpenJobs(ctx context.Context, limit int64) ([]models.Job, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.jobRepo.ListOpen(ctx, limit)
}
