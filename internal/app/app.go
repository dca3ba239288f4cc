// internal/app/app.go
package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/config"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/repositories"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// App owns the long-lived client connections (mongo, redis).
type App struct {
	Mongo *mongo.Client
	DB    *mongo.Database
	Redis *redis.Client
}

func NewApp(cfg *config.Config) (*App, error) {
	client, err := repositories.Connect(context.Background(), cfg.MongoURL)
	if err != nil {
		return nil, err
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		// Rate limiting degrades without redis; the store is the hard
		// dependency, so only warn here.
		utils.Logger.WithError(err).Warn("Redis unreachable at startup")
	}

	return &App{
		Mongo: client,
		DB:    client.Database(cfg.MongoDBName),
		Redis: rdb,
	}, nil
}

func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Mongo.Disconnect(ctx); err != nil {
		utils.Logger.WithError(err).Error("Failed to disconnect mongo client")
	}
	if err := a.Redis.Close(); err != nil {
		utils.Logger.WithError(err).Error("Failed to close redis client")
	}
}

// Ping verifies the backing store is reachable; used by the health endpoint.
func (a *App) Ping(ctx context.Context) error {
	return a.Mongo.Ping(ctx, nil)
}
