package routes

const (
	// Health
	Health = "/health"

	// Registration (public)
	AuthRegister = "/api/v1/auth/register"
	AuthResend   = "/api/v1/auth/resend"
	AuthVerify   = "/api/v1/auth/verify"

	// Jobs
	JobsBase = "/api/v1/jobs"
	JobsOpen = "/api/v1/jobs/open"
	JobByID  = "/api/v1/jobs/{id}"

	// Proposals
	ProposalsBase     = "/api/v1/proposals"
	ProposalsByJob    = "/api/v1/jobs/{id}/proposals"
	ProposalAccept    = "/api/v1/proposals/{id}/accept"
	ProposalReject    = "/api/v1/proposals/{id}/reject"
	ProposalWithdraw  = "/api/v1/proposals/{id}/withdraw"

	// Contracts
	ContractByID          = "/api/v1/contracts/{id}"
	ContractComplete      = "/api/v1/contracts/{id}/complete"
	ContractCancel        = "/api/v1/contracts/{id}/cancel"
	ContractDeliverables  = "/api/v1/contracts/{id}/deliverables"
	ContractMilestones    = "/api/v1/contracts/{id}/milestones"

	// Notifications
	NotificationsBase     = "/api/v1/notifications"
	NotificationMarkRead  = "/api/v1/notifications/{id}/read"
)
