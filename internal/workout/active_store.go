package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/go-redis/redis/v8"
)

const (
	activeWorkoutKeyPrefix = "fitbuddy-active-workout||"
	// DefaultActiveTTL bounds how long a forgotten workout stays active
	DefaultActiveTTL = 24 * time.Hour
)

// ActiveStore keeps the active workout per account in redis.
type ActiveStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewActiveStore(redisClient *redis.Client, ttl time.Duration) *ActiveStore {
	return &ActiveStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func activeWorkoutKey(accountID int) string {
	return activeWorkoutKeyPrefix + strconv.Itoa(accountID)
}

// Get returns nil when the account has no active workout.
func (s *ActiveStore) Get(ctx context.Context, accountID int) (*ActiveWorkout, error) {
	raw, err := s.redisClient.Get(ctx, activeWorkoutKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperr.Storage("get active workout", err)
	}

	var aw ActiveWorkout
	if err := pkg.DecodeJSONBytes(raw, &aw); err != nil {
		return nil, fmt.Errorf("decode active workout: %w", err)
	}
	if err := aw.validate(); err != nil {
		return nil, fmt.Errorf("decode active workout: %w", err)
	}
	return &aw, nil
}

// Create stores the workout only if none is active, and reports whether it did.
func (s *ActiveStore) Create(ctx context.Context, accountID int, aw *ActiveWorkout) (bool, error) {
	raw, err := json.Marshal(aw)
	if err != nil {
		return false, fmt.Errorf("marshal active workout: %w", err)
	}
	created, err := s.redisClient.SetNX(ctx, activeWorkoutKey(accountID), raw, s.ttl).Result()
	if err != nil {
		return false, apperr.Storage("create active workout", err)
	}
	return created, nil
}

func (s *ActiveStore) Save(ctx context.Context, accountID int, aw *ActiveWorkout) error {
	raw, err := json.Marshal(aw)
	if err != nil {
		return fmt.Errorf("marshal active workout: %w", err)
	}
	if err := s.redisClient.Set(ctx, activeWorkoutKey(accountID), raw, s.ttl).Err(); err != nil {
		return apperr.Storage("save active workout", err)
	}
	return nil
}

func (s *ActiveStore) Clear(ctx context.Context, accountID int) error {
	if err := s.redisClient.Del(ctx, activeWorkoutKey(accountID)).Err(); err != nil {
		return apperr.Storage("clear active workout", err)
	}
	return nil
}

// ClearAccount drops the transient workout state on logout and account deletion.
func (s *ActiveStore) ClearAccount(ctx context.Context, accountID int) error {
	return s.Clear(ctx, accountID)
}
