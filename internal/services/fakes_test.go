// internal/services/fakes_test.go
package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// In-memory fakes mirroring the repository error contracts: ErrNotFound on
// misses, ErrAlreadyExists on unique-index violations, ErrNoRowsUpdated on
// gated updates that match nothing.

type fakeAccountRepo struct {
	accounts  map[uuid.UUID]*models.Account
	createErr error
	totalsErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*models.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, a *models.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return utils.ErrAlreadyExists
		}
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) ApplyContractTotals(_ context.Context, workerID, clientID uuid.UUID, amount int64) error {
	if r.totalsErr != nil {
		return r.totalsErr
	}
	worker, ok := r.accounts[workerID]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	worker.CompletedJobs++
	worker.TotalEarnings += amount
	client, ok := r.accounts[clientID]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	client.TotalSpent += amount
	return nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*models.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, j *models.Job) error {
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) ListOpen(_ context.Context, limit int64) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.Status == models.JobStatusOpen && int64(len(out)) < limit {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) SetInProgress(_ context.Context, id, workerID uuid.UUID) error {
	j, ok := r.jobs[id]
	if !ok || j.Status != models.JobStatusOpen {
		return utils.ErrNoRowsUpdated
	}
	j.Status = models.JobStatusInProgress
	w := workerID
	j.HiredWorkerID = &w
	return nil
}

func (r *fakeJobRepo) SetStatus(_ context.Context, id uuid.UUID, status models.JobStatusType) error {
	j, ok := r.jobs[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	j.Status = status
	return nil
}

type fakeProposalRepo struct {
	proposals map[uuid.UUID]*models.Proposal
}

func newFakeProposalRepo() *fakeProposalRepo {
	return &fakeProposalRepo{proposals: make(map[uuid.UUID]*models.Proposal)}
}

func (r *fakeProposalRepo) Create(_ context.Context, p *models.Proposal) error {
	for _, existing := range r.proposals {
		if existing.JobID == p.JobID && existing.WorkerID == p.WorkerID {
			return utils.ErrAlreadyExists
		}
	}
	cp := *p
	r.proposals[p.ID] = &cp
	return nil
}

func (r *fakeProposalRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Proposal, error) {
	p, ok := r.proposals[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProposalRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range r.proposals {
		if p.JobID == jobID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProposalRepo) SetStatus(_ context.Context, id uuid.UUID, status models.ProposalStatusType) error {
	p, ok := r.proposals[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	p.Status = status
	return nil
}

func (r *fakeProposalRepo) RejectPendingByJob(_ context.Context, jobID, excludeID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.proposals {
		if p.JobID == jobID && p.ID != excludeID && p.Status == models.ProposalStatusPending {
			p.Status = models.ProposalStatusRejected
			n++
		}
	}
	return n, nil
}

type fakeContractRepo struct {
	contracts map[uuid.UUID]*models.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: make(map[uuid.UUID]*models.Contract)}
}

func (r *fakeContractRepo) Create(_ context.Context, c *models.Contract) error {
	for _, existing := range r.contracts {
		if existing.ProposalID == c.ProposalID {
			return utils.ErrAlreadyExists
		}
	}
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Contract, error) {
	var out []models.Contract
	for _, c := range r.contracts {
		if c.ClientID == userID || c.WorkerID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) Complete(_ context.Context, id uuid.UUID, at time.Time) error {
	c, ok := r.contracts[id]
	if !ok || c.Status != models.ContractStatusActive {
		return utils.ErrNoRowsUpdated
	}
	c.Status = models.ContractStatusCompleted
	c.PaymentStatus = models.PaymentStatusReleased
	t := at
	c.CompletedAt = &t
	return nil
}

func (r *fakeContractRepo) Cancel(_ context.Context, id uuid.UUID, payment models.PaymentStatusType) error {
	c, ok := r.contracts[id]
	if !ok || c.Status != models.ContractStatusActive {
		return utils.ErrNoRowsUpdated
	}
	c.Status = models.ContractStatusCancelled
	c.PaymentStatus = payment
	return nil
}

func (r *fakeContractRepo) AddDeliverable(_ context.Context, id uuid.UUID, d models.Deliverable) error {
	c, ok := r.contracts[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	c.Deliverables = append(c.Deliverables, d)
	return nil
}

func (r *fakeContractRepo) AddMilestone(_ context.Context, id uuid.UUID, m models.Milestone) error {
	c, ok := r.contracts[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	c.Milestones = append(c.Milestones, m)
	return nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	createErr     error
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID uuid.UUID, limit int64) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && int64(len(out)) < limit {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id, recipientID uuid.UUID) error {
	for _, n := range r.notifications {
		if n.ID == id && n.RecipientID == recipientID {
			n.Read = true
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *fakeNotificationRepo) byRecipient(recipientID uuid.UUID) []*models.Notification {
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out
}

type sentEmail struct {
	Email string
	Name  string
	Code  string
}

// fakeMailer is safe for concurrent sends, matching the real sender.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentEmail
	sendErr error
}

func (m *fakeMailer) SendOTPEmail(_ context.Context, email, name, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentEmail{Email: email, Name: name, Code: code})
	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type fakeSMSSender struct {
	sent []string
}

func (m *fakeSMSSender) SendAlert(_ context.Context, phone, body string) error {
	m.sent = append(m.sent, phone+": "+body)
	return nil
}

type fakeLimiter struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (l *fakeLimiter) CheckEmailRateLimits(_ context.Context, _, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.err
}

func (l *fakeLimiter) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

type fakePusher struct {
	pushed  []any
	pushErr error
}

func (p *fakePusher) Push(_ uuid.UUID, payload any) error {
	if p.pushErr != nil {
		return p.pushErr
	}
	p.pushed = append(p.pushed, payload)
	return nil
}

// fakeHasher keeps registration tests off the real bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}
