// internal/services/notification_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/repositories"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// LivePusher is the seam to the realtime gateway. Implemented by
// realtime.Hub; the fanout never sees a concrete transport.
type LivePusher interface {
	Push(userID uuid.UUID, payload any) error
}

// NotificationService durably records domain events and attempts
// best-effort live delivery. Persistence must succeed or the whole call
// fails; a failed push is swallowed — the stored record is the source of
// truth and the recipient sees it on the next poll.
type NotificationService interface {
	Notify(ctx context.Context, recipientID uuid.UUID, typ models.NotificationType, title, message, link string, relatedID *uuid.UUID) (*models.Notification, error)

	NotifyNewProposal(ctx context.Context, clientID uuid.UUID, jobTitle string, proposalID uuid.UUID) error
	NotifyNewMessage(ctx context.Context, recipientID uuid.UUID, senderName string, conversationID uuid.UUID) error
	NotifyDeliverableSubmitted(ctx context.Context, clientID uuid.UUID, jobTitle string, contractID uuid.UUID) error
	NotifyProposalAccepted(ctx context.Context, workerID uuid.UUID, jobTitle string, contractID uuid.UUID) error
	NotifyContractCompleted(ctx context.Context, workerID uuid.UUID, jobTitle string, contractID uuid.UUID) error
	NotifyPaymentReceived(ctx context.Context, workerID uuid.UUID, amount int64, contractID uuid.UUID) error
	NotifyNewReview(ctx context.Context, recipientID uuid.UUID, reviewerName string, reviewID uuid.UUID) error

	List(ctx context.Context, recipientID uuid.UUID, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
}

type notificationService struct {
	notifRepo repositories.NotificationRepository
	pusher    LivePusher
}

func NewNotificationService(notifRepo repositories.NotificationRepository, pusher LivePusher) NotificationService {
	return &notificationService{notifRepo: notifRepo, pusher: pusher}
}

type notificationMessage struct {
	Type string               `json:"type"`
	Data *models.Notification `json:"data"`
}

func (s *notificationService) Notify(
	ctx context.Context,
	recipientID uuid.UUID,
	typ models.NotificationType,
	title, message, link string,
	relatedID *uuid.UUID,
) (*models.Notification, error) {
	n := &models.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Type:        typ,
		Title:       title,
		Message:     message,
		Link:        link,
		RelatedID:   relatedID,
		Read:        false,
	}

	if err := s.notifRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	if pushErr := s.pusher.Push(recipientID, notificationMessage{Type: "notification", Data: n}); pushErr != nil {
		// Best-effort only: stale or absent connections never fail the
		// triggering request.
		utils.Logger.WithError(pushErr).Debugf("Live delivery skipped for notification %s", n.ID)
	}
	return n, nil
}

func (s *notificationService) NotifyNewProposal(ctx context.Context, clientID uuid.UUID, jobTitle string, proposalID uuid.UUID) error {
	_, err := s.Notify(ctx, clientID, models.NotificationNewProposal,
		"New proposal received",
		fmt.Sprintf("A freelancer submitted a proposal for \"%s\".", jobTitle),
		"/proposals/"+proposalID.String(), &proposalID)
	return err
}

func (s *notificationService) NotifyNewMessage(ctx context.Context, recipientID uuid.UUID, senderName string, conversationID uuid.UUID) error {
	_, err := s.Notify(ctx, recipientID, models.NotificationNewMessage,
		"New message",
		fmt.Sprintf("%s sent you a message.", senderName),
		"/messages/"+conversationID.String(), &conversationID)
	return err
}

func (s *notificationService) NotifyDeliverableSubmitted(ctx context.Context, clientID uuid.UUID, jobTitle string, contractID uuid.UUID) error {
	_, err := s.Notify(ctx, clientID, models.NotificationDeliverableSubmitted,
		"Deliverable submitted",
		fmt.Sprintf("A deliverable was submitted for \"%s\".", jobTitle),
		"/contracts/"+contractID.String(), &contractID)
	return err
}

func (s *notificationService) NotifyProposalAccepted(ctx context.Context, workerID uuid.UUID, jobTitle string, contractID uuid.UUID) error {
	_, err := s.Notify(ctx, workerID, models.NotificationProposalAccepted,
		"Proposal accepted",
		fmt.Sprintf("Your proposal for \"%s\" was accepted. A contract has been created.", jobTitle),
		"/contracts/"+contractID.String(), &contractID)
	return err
}

func (s *notificationService) NotifyContractCompleted(ctx context.Context, workerID uuid.UUID, jobTitle string, contractID uuid.UUID) error {
	_, err := s.Notify(ctx, workerID, models.NotificationContractCompleted,
		"Contract completed",
		fmt.Sprintf("The contract for \"%s\" was marked completed.", jobTitle),
		"/contracts/"+contractID.String(), &contractID)
	return err
}

func (s *notificationService) NotifyPaymentReceived(ctx context.Context, workerID uuid.UUID, amount int64, contractID uuid.UUID) error {
	_, err := s.Notify(ctx, workerID, models.NotificationPaymentReceived,
		"Payment received",
		fmt.Sprintf("A payment of $%.2f was released to your account.", float64(amount)/100),
		"/contracts/"+contractID.String(), &contractID)
	return err
}

func (s *notificationService) NotifyNewReview(ctx context.Context, recipientID uuid.UUID, reviewerName string, reviewID uuid.UUID) error {
	_, err := s.Notify(ctx, recipientID, models.NotificationNewReview,
		"New review",
		fmt.Sprintf("%s left you a review.", reviewerName),
		"/reviews/"+reviewID.String(), &reviewID)
	return err
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID, limit int64) ([]models.Notification, error) {
	return s.notifRepo.ListByRecipient(ctx, recipientID, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	return s.notifRepo.MarkRead(ctx, id, recipientID)
}
