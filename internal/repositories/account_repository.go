// internal/repositories/account_repository.go
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

type AccountRepository interface {
	Create(ctx context.Context, a *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ApplyContractTotals bumps both parties' aggregate statistics after a
	// contract completes: worker completed_jobs/total_earnings, client
	// total_spent. Updates run worker-first; a partial failure is returned
	// to the caller, never retried here.
	ApplyContractTotals(ctx context.Context, workerID, clientID uuid.UUID, amount int64) error
}

type accountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) AccountRepository {
	col := db.Collection("accounts")
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &accountRepository{col: col}
}

func (r *accountRepository) Create(ctx context.Context, a *models.Account) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrAlreadyExists
	}
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var a models.Account
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *accountRepository) ApplyContractTotals(ctx context.Context, workerID, clientID uuid.UUID, amount int64) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": workerID}, bson.M{
		"$inc": bson.M{"completed_jobs": 1, "total_earnings": amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNoRowsUpdated
	}

	res, err = r.col.UpdateOne(ctx, bson.M{"_id": clientID}, bson.M{
		"$inc": bson.M{"total_spent": amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}
