// internal/controllers/proposals_controller.go
package controllers

import (
	"net/http"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/services"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type ProposalsController struct {
	proposalService services.ProposalService
}

func NewProposalsController(proposalService services.ProposalService) *ProposalsController {
	return &ProposalsController{proposalService: proposalService}
}

func (c *ProposalsController) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dtos.SubmitProposalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	proposal, err := c.proposalService.SubmitProposal(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to submit proposal")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, proposal)
}

// AcceptProposal hires the worker: the job moves to IN_PROGRESS, sibling
// proposals are rejected and a contract is returned.
func (c *ProposalsController) AcceptProposal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	proposalID, ok := pathID(w, r)
	if !ok {
		return
	}

	contract, err := c.proposalService.AcceptProposal(r.Context(), proposalID, userID)
	if err != nil {
		respondServiceError(w, err, "Failed to accept proposal")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, contract)
}

func (c *ProposalsController) RejectProposal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	proposalID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.proposalService.RejectProposal(r.Context(), proposalID, userID); err != nil {
		respondServiceError(w, err, "Failed to reject proposal")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Proposal rejected"})
}

func (c *ProposalsController) WithdrawProposal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	proposalID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.proposalService.WithdrawProposal(r.Context(), proposalID, userID); err != nil {
		respondServiceError(w, err, "Failed to withdraw proposal")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Proposal withdrawn"})
}

func (c *ProposalsController) ListByJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	jobID, ok := pathID(w, r)
	if !ok {
		return
	}

	proposals, err := c.proposalService.ListByJob(r.Context(), jobID, userID)
	if err != nil {
		respondServiceError(w, err, "Failed to list proposals")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, proposals)
}
