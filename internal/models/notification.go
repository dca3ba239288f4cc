// internal/models/notification.go

package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationNewProposal          NotificationType = "NEW_PROPOSAL"
	NotificationNewMessage           NotificationType = "NEW_MESSAGE"
	NotificationDeliverableSubmitted NotificationType = "DELIVERABLE_SUBMITTED"
	NotificationProposalAccepted     NotificationType = "PROPOSAL_ACCEPTED"
	NotificationContractCompleted    NotificationType = "CONTRACT_COMPLETED"
	NotificationPaymentReceived      NotificationType = "PAYMENT_RECEIVED"
	NotificationNewReview            NotificationType = "NEW_REVIEW"
)

// Notification for the notifications collection. Immutable once created
// except for the read flag.
type Notification struct {
	ID          uuid.UUID        `bson:"_id" json:"id"`
	RecipientID uuid.UUID        `bson:"recipient_id" json:"recipient_id"`
	Type        NotificationType `bson:"type" json:"type"`
	Title       string           `bson:"title" json:"title"`
	Message     string           `bson:"message" json:"message"`
	Link        string           `bson:"link,omitempty" json:"link,omitempty"`
	RelatedID   *uuid.UUID       `bson:"related_id,omitempty" json:"related_id,omitempty"`
	Read        bool             `bson:"read" json:"read"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
}
