// internal/services/proposal_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/repositories"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type ProposalService interface {
	SubmitProposal(ctx context.Context, workerID uuid.UUID, req dtos.SubmitProposalRequest) (*models.Proposal, error)

	// AcceptProposal performs the multi-entity hire transition. Sub-writes
	// run in a fixed order (proposal, job, sibling rejection, contract) so
	// a crash mid-way leaves the job IN_PROGRESS and a re-run is rejected
	// with invalid_state instead of hiring twice.
	AcceptProposal(ctx context.Context, proposalID, actingUserID uuid.UUID) (*models.Contract, error)

	RejectProposal(ctx context.Context, proposalID, actingUserID uuid.UUID) error
	WithdrawProposal(ctx context.Context, proposalID, actingUserID uuid.UUID) error
	ListByJob(ctx context.Context, jobID, actingUserID uuid.UUID) ([]models.Proposal, error)
}

type proposalService struct {
	proposalRepo repositories.ProposalRepository
	jobRepo      repositories.JobRepository
	contractRepo repositories.ContractRepository
	notifier     NotificationService
}

func NewProposalService(
	proposalRepo repositories.ProposalRepository,
	jobRepo repositories.JobRepository,
	contractRepo repositories.ContractRepository,
	notifier NotificationService,
) ProposalService {
	return &proposalService{
		proposalRepo: proposalRepo,
		jobRepo:      jobRepo,
		contractRepo: contractRepo,
		notifier:     notifier,
	}
}

func (s *proposalService) SubmitProposal(ctx context.Context, workerID uuid.UUID, req dtos.SubmitProposalRequest) (*models.Proposal, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusOpen {
		return nil, utils.ErrInvalidState
	}
	if job.ClientID == workerID {
		return nil, utils.ErrForbidden
	}

	p := &models.Proposal{
		ID:          uuid.New(),
		JobID:       job.ID,
		WorkerID:    workerID,
		CoverLetter: req.CoverLetter,
		BidAmount:   req.BidAmount,
		Status:      models.ProposalStatusPending,
	}
	// One submission per worker per job is the store's unique index; a
	// duplicate comes back as already_exists.
	if err := s.proposalRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if nErr := s.notifier.NotifyNewProposal(ctx, job.ClientID, job.Title, p.ID); nErr != nil {
		utils.Logger.WithError(nErr).Error("Failed to notify client of new proposal")
	}
	return p, nil
}

func (s *proposalService) AcceptProposal(ctx context.Context, proposalID, actingUserID uuid.UUID) (*models.Contract, error) {
	prop, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobRepo.GetByID(ctx, prop.JobID)
	if err != nil {
		return nil, err
	}

	if job.ClientID != actingUserID {
		return nil, utils.ErrForbidden
	}
	// A job that already left OPEN has a winner; never a silent no-op.
	if job.Status != models.JobStatusOpen {
		return nil, utils.ErrInvalidState
	}
	if prop.Status != models.ProposalStatusPending {
		return nil, utils.ErrInvalidState
	}

	// 1. Winner first.
	if err := s.proposalRepo.SetStatus(ctx, prop.ID, models.ProposalStatusAccepted); err != nil {
		return nil, err
	}

	// 2. Job leaves OPEN; the OPEN-gated update also closes the race with
	// a concurrent acceptance.
	if err := s.jobRepo.SetInProgress(ctx, job.ID, prop.WorkerID); err != nil {
		if errors.Is(err, utils.ErrNoRowsUpdated) {
			return nil, utils.ErrInvalidState
		}
		return nil, err
	}

	// 3. Losers.
	if _, err := s.proposalRepo.RejectPendingByJob(ctx, job.ID, prop.ID); err != nil {
		return nil, fmt.Errorf("failed to reject competing proposals: %w", err)
	}

	// 4. Contract, bound to the accepted proposal.
	contract := &models.Contract{
		ID:            uuid.New(),
		JobID:         job.ID,
		ClientID:      job.ClientID,
		WorkerID:      prop.WorkerID,
		ProposalID:    prop.ID,
		TotalAmount:   prop.BidAmount,
		Status:        models.ContractStatusActive,
		PaymentStatus: models.PaymentStatusPending,
		Deliverables:  []models.Deliverable{},
		Milestones:    []models.Milestone{},
	}
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	if nErr := s.notifier.NotifyProposalAccepted(ctx, prop.WorkerID, job.Title, contract.ID); nErr != nil {
		utils.Logger.WithError(nErr).Error("Failed to notify worker of accepted proposal")
	}
	return contract, nil
}

func (s *proposalService) RejectProposal(ctx context.Context, proposalID, actingUserID uuid.UUID) error {
	prop, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return err
	}
	job, err := s.jobRepo.GetByID(ctx, prop.JobID)
	if err != nil {
		return err
	}
	if job.ClientID != actingUserID {
		return utils.ErrForbidden
	}
	if prop.Status != models.ProposalStatusPending {
		return utils.ErrInvalidState
	}
	return s.proposalRepo.SetStatus(ctx, prop.ID, models.ProposalStatusRejected)
}

func (s *proposalService) WithdrawProposal(ctx context.Context, proposalID, actingUserID uuid.UUID) error {
	prop, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return err
	}
	if prop.WorkerID != actingUserID {
		return utils.ErrForbidden
	}
	if prop.Status != models.ProposalStatusPending {
		return utils.ErrInvalidState
	}
	return s.proposalRepo.SetStatus(ctx, prop.ID, models.ProposalStatusWithdrawn)
}

func (s *proposalService) ListByJob(ctx context.Context, jobID, actingUserID uuid.UUID) ([]models.Proposal, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != actingUserID {
		return nil, utils.ErrForbidden
	}
	return s.proposalRepo.ListByJob(ctx, jobID)
}
