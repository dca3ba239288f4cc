// internal/services/contract_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/constants"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/dtos"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/repositories"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type ContractService interface {
	GetContract(ctx context.Context, id, actingUserID uuid.UUID) (*models.Contract, error)

	// CompleteContract releases payment and settles both parties' aggregate
	// statistics. The whole operation is non-idempotent: a counter failure
	// partway is surfaced as a server error and must not be retried
	// automatically, since that would double-count.
	CompleteContract(ctx context.Context, contractID, actingUserID uuid.UUID) (*models.Contract, error)

	CancelContract(ctx context.Context, contractID, actingUserID uuid.UUID) error
	SubmitDeliverable(ctx context.Context, contractID, actingUserID uuid.UUID, req dtos.SubmitDeliverableRequest) error
	AddMilestone(ctx context.Context, contractID, actingUserID uuid.UUID, req dtos.AddMilestoneRequest) error
}

type contractService struct {
	contractRepo repositories.ContractRepository
	jobRepo      repositories.JobRepository
	accountRepo  repositories.AccountRepository
	notifier     NotificationService
	sms          SMSSender
}

func NewContractService(
	contractRepo repositories.ContractRepository,
	jobRepo repositories.JobRepository,
	accountRepo repositories.AccountRepository,
	notifier NotificationService,
	sms SMSSender,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		jobRepo:      jobRepo,
		accountRepo:  accountRepo,
		notifier:     notifier,
		sms:          sms,
	}
}

func (s *contractService) GetContract(ctx context.Context, id, actingUserID uuid.UUID) (*models.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.ClientID != actingUserID && c.WorkerID != actingUserID {
		return nil, utils.ErrForbidden
	}
	return c, nil
}

func (s *contractService) CompleteContract(ctx context.Context, contractID, actingUserID uuid.UUID) (*models.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.ClientID != actingUserID {
		return nil, utils.ErrForbidden
	}
	if c.Status != models.ContractStatusActive {
		return nil, utils.ErrInvalidState
	}
	if len(c.Deliverables) < constants.MinDeliverablesForCompletion {
		return nil, utils.ErrInvalidState
	}

	job, err := s.jobRepo.GetByID(ctx, c.JobID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.contractRepo.Complete(ctx, c.ID, now); err != nil {
		if errors.Is(err, utils.ErrNoRowsUpdated) {
			return nil, utils.ErrInvalidState
		}
		return nil, err
	}
	c.Status = models.ContractStatusCompleted
	c.PaymentStatus = models.PaymentStatusReleased
	c.CompletedAt = &now

	if err := s.jobRepo.SetStatus(ctx, c.JobID, models.JobStatusCompleted); err != nil {
		return nil, fmt.Errorf("contract %s completed but job update failed: %w", c.ID, err)
	}

	// The four counters settle together; there is no compensating
	// transaction, so a partial failure here is fatal for the request.
	if err := s.accountRepo.ApplyContractTotals(ctx, c.WorkerID, c.ClientID, c.TotalAmount); err != nil {
		utils.Logger.WithError(err).Errorf("Aggregate totals update failed for contract %s; manual reconciliation required", c.ID)
		return nil, fmt.Errorf("contract %s completed but totals update failed: %w", c.ID, err)
	}

	if nErr := s.notifier.NotifyContractCompleted(ctx, c.WorkerID, job.Title, c.ID); nErr != nil {
		utils.Logger.WithError(nErr).Error("Failed to notify worker of completed contract")
	}
	if nErr := s.notifier.NotifyPaymentReceived(ctx, c.WorkerID, c.TotalAmount, c.ID); nErr != nil {
		utils.Logger.WithError(nErr).Error("Failed to notify worker of released payment")
	}
	s.sendPaymentSMS(ctx, c)

	return c, nil
}

// sendPaymentSMS texts the worker about the released payment. Best-effort,
// same contract as the live push.
func (s *contractService) sendPaymentSMS(ctx context.Context, c *models.Contract) {
	worker, err := s.accountRepo.GetByID(ctx, c.WorkerID)
	if err != nil || worker.PhoneNumber == "" {
		return
	}
	body := fmt.Sprintf("A payment of $%.2f was released to your account.", float64(c.TotalAmount)/100)
	if smsErr := s.sms.SendAlert(ctx, worker.PhoneNumber, body); smsErr != nil {
		utils.Logger.WithError(smsErr).Debug("Payment SMS alert not delivered")
	}
}

func (s *contractService) CancelContract(ctx context.Context, contractID, actingUserID uuid.UUID) error {
	c, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return err
	}
	// Either party may cancel an active contract.
	if c.ClientID != actingUserID && c.WorkerID != actingUserID {
		return utils.ErrForbidden
	}
	if c.Status != models.ContractStatusActive {
		return utils.ErrInvalidState
	}

	payment := c.PaymentStatus
	if payment == models.PaymentStatusEscrowed {
		payment = models.PaymentStatusRefunded
	}
	if err := s.contractRepo.Cancel(ctx, c.ID, payment); err != nil {
		if errors.Is(err, utils.ErrNoRowsUpdated) {
			return utils.ErrInvalidState
		}
		return err
	}
	return s.jobRepo.SetStatus(ctx, c.JobID, models.JobStatusCancelled)
}

func (s *contractService) SubmitDeliverable(ctx context.Context, contractID, actingUserID uuid.UUID, req dtos.SubmitDeliverableRequest) error {
	c, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return err
	}
	if c.WorkerID != actingUserID {
		return utils.ErrForbidden
	}
	if c.Status != models.ContractStatusActive {
		return utils.ErrInvalidState
	}

	d := models.Deliverable{
		ID:          uuid.New(),
		Title:       req.Title,
		FileURL:     req.FileURL,
		Description: req.Description,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.contractRepo.AddDeliverable(ctx, c.ID, d); err != nil {
		return err
	}

	job, jErr := s.jobRepo.GetByID(ctx, c.JobID)
	if jErr != nil {
		utils.Logger.WithError(jErr).Error("Deliverable recorded but job lookup for notification failed")
		return nil
	}
	if nErr := s.notifier.NotifyDeliverableSubmitted(ctx, c.ClientID, job.Title, c.ID); nErr != nil {
		utils.Logger.WithError(nErr).Error("Failed to notify client of submitted deliverable")
	}
	return nil
}

func (s *contractService) AddMilestone(ctx context.Context, contractID, actingUserID uuid.UUID, req dtos.AddMilestoneRequest) error {
	c, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return err
	}
	if c.ClientID != actingUserID {
		return utils.ErrForbidden
	}
	if c.Status != models.ContractStatusActive {
		return utils.ErrInvalidState
	}

	m := models.Milestone{
		ID:      uuid.New(),
		Title:   req.Title,
		Amount:  req.Amount,
		DueDate: req.DueDate,
	}
	return s.contractRepo.AddMilestone(ctx, c.ID, m)
}
