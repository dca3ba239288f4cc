// internal/controllers/jobs_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/services"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type JobsController struct {
	jobService services.JobService
}

func NewJobsController(jobService services.JobService) *JobsController {
	return &JobsController{jobService: jobService}
}

func (c *JobsController) CreateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateJobRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	job, err := c.jobService.CreateJob(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to create job")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, job)
}

func (c *JobsController) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	job, err := c.jobService.GetJob(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch job")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, job)
}

func (c *JobsController) ListOpenJobs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	jobs, err := c.jobService.ListOpenJobs(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err, "Failed to list jobs")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, jobs)
}
