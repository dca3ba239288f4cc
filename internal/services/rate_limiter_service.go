// internal/services/rate_limiter_service.go
package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/config"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// RateLimiterService provides a high-level interface for checking various rate limits.
type RateLimiterService interface {
	CheckEmailRateLimits(ctx context.Context, ip, emailAddress string) error
}

type rateLimiterService struct {
	rdb *redis.Client
	cfg *config.Config
}

func NewRateLimiterService(rdb *redis.Client, cfg *config.Config) RateLimiterService {
	return &rateLimiterService{rdb: rdb, cfg: cfg}
}

// CheckEmailRateLimits checks global, per-IP, and per-email limits for OTP email requests.
func (s *rateLimiterService) CheckEmailRateLimits(ctx context.Context, ip, emailAddress string) error {
	// 1. Global limit
	if err := s.incrementAndCheck(ctx, "email:global", s.cfg.GlobalEmailLimitPerHour); err != nil {
		return err
	}

	// 2. Per-IP limit
	ipKey := fmt.Sprintf("email:ip:%s", ip)
	if err := s.incrementAndCheck(ctx, ipKey, s.cfg.EmailLimitPerIPPerHour); err != nil {
		return err
	}

	// 3. Per-destination limit
	emailKey := fmt.Sprintf("email:address:%s", emailAddress)
	if err := s.incrementAndCheck(ctx, emailKey, s.cfg.EmailLimitPerEmailPerHour); err != nil {
		return err
	}

	return nil
}

func (s *rateLimiterService) incrementAndCheck(ctx context.Context, key string, limit int) error {
	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		s.rdb.Expire(ctx, key, s.cfg.RateLimitWindow)
	}
	if count > int64(limit) {
		utils.Logger.Warnf("Email rate limit exceeded (key: %s)", key)
		return utils.ErrRateLimitExceeded
	}
	return nil
}
