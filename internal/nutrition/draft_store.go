package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/go-redis/redis/v8"
)

const (
	mealDraftKeyPrefix = "fitbuddy-meal-draft||"
	DefaultDraftTTL    = 24 * time.Hour
)

// DraftStore keeps the uncommitted meal of each account as a redis list.
type DraftStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDraftStore(redisClient *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func mealDraftKey(accountID int) string {
	return mealDraftKeyPrefix + strconv.Itoa(accountID)
}

func (s *DraftStore) Append(ctx context.Context, accountID int, item ConsumedFood) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal draft item: %w", err)
	}

	key := mealDraftKey(accountID)
	if err := s.redisClient.RPush(ctx, key, raw).Err(); err != nil {
		return apperr.Storage("append draft item", err)
	}
	// every addition extends the draft lifetime
	if err := s.redisClient.Expire(ctx, key, s.ttl).Err(); err != nil {
		return apperr.Storage("expire draft", err)
	}
	return nil
}

func (s *DraftStore) Items(ctx context.Context, accountID int) ([]ConsumedFood, error) {
	rawItems, err := s.redisClient.LRange(ctx, mealDraftKey(accountID), 0, -1).Result()
	if err != nil {
		return nil, apperr.Storage("get draft items", err)
	}

	items := make([]ConsumedFood, 0, len(rawItems))
	for _, raw := range rawItems {
		var item ConsumedFood
		if err := pkg.DecodeJSONBytes([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("decode draft item: %w", err)
		}
		if err := item.validate(); err != nil {
			return nil, fmt.Errorf("decode draft item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *DraftStore) Clear(ctx context.Context, accountID int) error {
	if err := s.redisClient.Del(ctx, mealDraftKey(accountID)).Err(); err != nil {
		return apperr.Storage("clear draft", err)
	}
	return nil
}

func (s *DraftStore) ClearAccount(ctx context.Context, accountID int) error {
	return s.Clear(ctx, accountID)
}
