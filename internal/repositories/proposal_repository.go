// internal/repositories/proposal_repository.go
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

type ProposalRepository interface {
	// Create inserts a proposal. The unique (job_id, worker_id) index turns
	// a second submission by the same worker into already_exists; there is
	// deliberately no procedural pre-check.
	Create(ctx context.Context, p *models.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Proposal, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ProposalStatusType) error

	// RejectPendingByJob bulk-transitions every other PENDING proposal on
	// the job to REJECTED. Returns the number of proposals rejected.
	RejectPendingByJob(ctx context.Context, jobID, excludeID uuid.UUID) (int64, error)
}

type proposalRepository struct {
	col *mongo.Collection
}

func NewProposalRepository(db *mongo.Database) ProposalRepository {
	col := db.Collection("proposals")
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "worker_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("job_worker_unique_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &proposalRepository{col: col}
}

func (r *proposalRepository) Create(ctx context.Context, p *models.Proposal) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrAlreadyExists
	}
	return err
}

func (r *proposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error) {
	var p models.Proposal
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *proposalRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Proposal, error) {
	cur, err := r.col.Find(ctx, bson.M{"job_id": jobID}, &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var proposals []models.Proposal
	if err := cur.All(ctx, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *proposalRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.ProposalStatusType) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *proposalRepository) RejectPendingByJob(ctx context.Context, jobID, excludeID uuid.UUID) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{
			"job_id": jobID,
			"_id":    bson.M{"$ne": excludeID},
			"status": models.ProposalStatusPending,
		},
		bson.M{"$set": bson.M{"status": models.ProposalStatusRejected, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
