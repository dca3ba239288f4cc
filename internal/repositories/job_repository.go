// internal/repositories/job_repository.go
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

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListOpen(ctx context.Context, limit int64) ([]models.Job, error)

	// SetInProgress transitions an OPEN job to IN_PROGRESS and records the
	// hired worker. The OPEN filter makes a re-run of acceptance fail with
	// no_rows_updated instead of silently re-hiring.
	SetInProgress(ctx context.Context, id, workerID uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status models.JobStatusType) error
}

type jobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) JobRepository {
	col := db.Collection("jobs")
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("status_created_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &jobRepository{col: col}
}

func (r *jobRepository) Create(ctx context.Context, j *models.Job) error {
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, j)
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var j models.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepository) ListOpen(ctx context.Context, limit int64) ([]models.Job, error) {
	cur, err := r.col.Find(ctx, bson.M{"status": models.JobStatusOpen}, &options.FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: &limit,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) SetInProgress(ctx context.Context, id, workerID uuid.UUID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.JobStatusOpen},
		bson.M{"$set": bson.M{
			"status":          models.JobStatusInProgress,
			"hired_worker_id": workerID,
			"updated_at":      time.Now().UTC(),
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

func (r *jobRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.JobStatusType) error {
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
