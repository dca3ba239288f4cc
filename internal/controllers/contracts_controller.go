// internal/controllers/contracts_controller.go
package controllers

import (
	"net/http"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/services"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type ContractsController struct {
	contractService services.ContractService
}

func NewContractsController(contractService services.ContractService) *ContractsController {
	return &ContractsController{contractService: contractService}
}

func (c *ContractsController) GetContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	contractID, ok := pathID(w, r)
	if !ok {
		return
	}

	contract, err := c.contractService.GetContract(r.Context(), contractID, userID)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch contract")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contract)
}

// CompleteContract releases payment, closes the job and bumps both parties'
// lifetime counters.
func (c *ContractsController) CompleteContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	contractID, ok := pathID(w, r)
	if !ok {
		return
	}

	contract, err := c.contractService.CompleteContract(r.Context(), contractID, userID)
	if err != nil {
		respondServiceError(w, err, "Failed to complete contract")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contract)
}

func (c *ContractsController) CancelContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	contractID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.contractService.CancelContract(r.Context(), contractID, userID); err != nil {
		respondServiceError(w, err, "Failed to cancel contract")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Contract cancelled"})
}

func (c *ContractsController) SubmitDeliverable(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	contractID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dtos.SubmitDeliverableRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.contractService.SubmitDeliverable(r.Context(), contractID, userID, req); err != nil {
		respondServiceError(w, err, "Failed to submit deliverable")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"message": "Deliverable submitted"})
}

func (c *ContractsController) AddMilestone(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	contractID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dtos.AddMilestoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.contractService.AddMilestone(r.Context(), contractID, userID, req); err != nil {
		respondServiceError(w, err, "Failed to add milestone")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"message": "Milestone added"})
}
