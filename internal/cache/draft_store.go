package cache

import (
	"context"
	"fmt"
	"time"

	"alcyxob/workout-tracker/internal/domain"

	"github.com/redis/go-redis/v9"
)

// DraftStore keeps one in-progress workout per user as a JSON blob.
type DraftStore interface {
	Get(ctx context.Context, userID string) (*domain.WorkoutDraft, bool, error)
	Save(ctx context.Context, userID string, draft *domain.WorkoutDraft) error
	Clear(ctx context.Context, userID string) error
}

type redisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDraftStore returns a DraftStore. A draft expires ttl after its
// last save; ttl <= 0 keeps drafts forever.
func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) DraftStore {
	if ttl < 0 {
		ttl = 0
	}
	return &redisDraftStore{rdb: rdb, ttl: ttl}
}

func draftKey(userID string) string {
	return keyPrefix + "draft:" + userID
}

func (s *redisDraftStore) Get(ctx context.Context, userID string) (*domain.WorkoutDraft, bool, error) {
	var draft domain.WorkoutDraft
	ok, err := getJSON(ctx, s.rdb, draftKey(userID), &draft)
	if err != nil {
		return nil, false, fmt.Errorf("read draft: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	return &draft, true, nil
}

func (s *redisDraftStore) Save(ctx context.Context, userID string, draft *domain.WorkoutDraft) error {
	if err := setJSON(ctx, s.rdb, draftKey(userID), draft, s.ttl); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}

func (s *redisDraftStore) Clear(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, draftKey(userID)).Err()
}
