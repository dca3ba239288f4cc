package constants

import "time"

const (
	// OTP codes
	VerificationCodeLength = 6
	VerificationCodeExpiry = 10 * time.Minute

	// Staging entries outlive their code so an expired code is reported
	// as code_expired rather than not_found until the sweep runs.
	PendingRegistrationTTL = 30 * time.Minute

	// Cron spec for the staging-cache sweep.
	StagingSweepSpec = "@every 5m"

	// Realtime connection tuning
	WSReadLimitBytes = 64 * 1024
	WSReadDeadline   = 60 * time.Second
	WSWriteDeadline  = 10 * time.Second
	WSPingInterval   = 30 * time.Second
	WSSendBufferSize = 256

	// A contract must have at least this many deliverables before the
	// client may complete it.
	MinDeliverablesForCompletion = 1
)
