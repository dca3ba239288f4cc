// internal/services/job_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

func TestCreateJob(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)
	clientID := uuid.New()

	job, err := svc.CreateJob(context.Background(), clientID, dtos.CreateJobRequest{
		Title:       "Logo design",
		Description: "A logo for a coffee shop.",
		Budget:      50000,
	})
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, clientID, job.ClientID)
	assert.Nil(t, job.HiredWorkerID)

	stored, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Logo design", stored.Title)
}

func TestGetJobUnknown(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())
	_, err := svc.GetJob(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListOpenJobsClampsLimit(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		_, err := svc.CreateJob(ctx, uuid.New(), dtos.CreateJobRequest{
			Title: "job", Description: "d", Budget: 100,
		})
		require.NoError(t, err)
	}

	jobs, err := svc.ListOpenJobs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 50)

	jobs, err = svc.ListOpenJobs(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, jobs, 10)
}
