// internal/repositories/contract_repository.go
package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/models"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type ContractRepository interface {
	Create(ctx context.Context, c *models.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contract, error)

	// Complete sets COMPLETED status and RELEASED payment status together
	// with the completion timestamp, gated on the contract still being
	// ACTIVE.
	Complete(ctx context.Context, id uuid.UUID, at time.Time) error
	Cancel(ctx context.Context, id uuid.UUID, payment models.PaymentStatusType) error
	AddDeliverable(ctx context.Context, id uuid.UUID, d models.Deliverable) error
	AddMilestone(ctx context.Context, id uuid.UUID, m models.Milestone) error
}

type contractRepository struct {
	col *mongo.Collection
}

func NewContractRepository(db *mongo.Database) ContractRepository {
	col := db.Collection("contracts")
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "proposal_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("proposal_unique_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &contractRepository{col: col}
}

func (r *contractRepository) Create(ctx context.Context, c *models.Contract) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrAlreadyExists
	}
	return err
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	var c models.Contract
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *contractRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contract, error) {
	filter := bson.M{"$or": []bson.M{
		{"client_id": userID},
		{"worker_id": userID},
	}}
	cur, err := r.col.Find(ctx, filter, &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var contracts []models.Contract
	if err := cur.All(ctx, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *contractRepository) Complete(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.ContractStatusActive},
		bson.M{"$set": bson.M{
			"status":         models.ContractStatusCompleted,
			"payment_status": models.PaymentStatusReleased,
			"completed_at":   at,
			"updated_at":     at,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *contractRepository) Cancel(ctx context.Context, id uuid.UUID, payment models.PaymentStatusType) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.ContractStatusActive},
		bson.M{"$set": bson.M{
			"status":         models.ContractStatusCancelled,
			"payment_status": payment,
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *contractRepository) AddDeliverable(ctx context.Context, id uuid.UUID, d models.Deliverable) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"deliverables": d},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *contractRepository) AddMilestone(ctx context.Context, id uuid.UUID, m models.Milestone) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"milestones": m},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}
