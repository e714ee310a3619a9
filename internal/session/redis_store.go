package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jaimerodas/elixirschool/internal/entities"

	"github.com/redis/go-redis/v9"
)

const (
	sessionPrefix = "session:"
	statePrefix   = "state:"

	stateTTL = 10 * time.Minute
)

// RedisStore keeps sessions and OAuth states in Redis with TTL expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an established Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Create stores a session until its expiry time.
func (r *RedisStore) Create(ctx context.Context, s Session) error {
	if s.ID == "" || s.Login == "" {
		return fmt.Errorf("%w: session id and login are required", entities.ErrInvalidArgument)
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%w: session expiry must be in the future", entities.ErrInvalidArgument)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return r.client.Set(ctx, sessionPrefix+s.ID, data, ttl).Err()
}

// Get returns a session by id, entities.ErrSessionNotFound when absent.
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := r.client.Get(ctx, sessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, entities.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

// Delete removes a session.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionPrefix+id).Err()
}

// SaveState records an OAuth state nonce with a short TTL.
func (r *RedisStore) SaveState(ctx context.Context, state string) error {
	if state == "" {
		return fmt.Errorf("%w: state is required", entities.ErrInvalidArgument)
	}
	return r.client.Set(ctx, statePrefix+state, "1", stateTTL).Err()
}

// ConsumeState validates a nonce and removes it so it cannot be replayed.
func (r *RedisStore) ConsumeState(ctx context.Context, state string) error {
	err := r.client.GetDel(ctx, statePrefix+state).Err()
	if err == redis.Nil {
		return entities.ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("consume state: %w", err)
	}
	return nil
}
