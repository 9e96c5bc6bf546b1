package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// AccountForToken resolves the session token to the logged in account id.
func (lc *LoginChecker) AccountForToken(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrSessionNotFound
	}

	cmd := lc.redisClient.Get(ctx, sessionKey(token))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	accountID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	if time.Since(createdAt) > lc.ttl {
		return 0, ErrSessionExpired
	}

	return accountID, nil
}
