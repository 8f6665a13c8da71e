package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goliatone/go-loandocs/pkg/canonical"
)

// DefaultTTL bounds how long an abandoned session's record lingers. Borrower
// data is sensitive; it should not outlive the application session by much.
const DefaultTTL = 24 * time.Hour

// Redis is a RecordStore backed by a shared Redis instance, for deployments
// where more than one server process handles the same session.
type Redis struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

// NewRedis creates a Redis-backed store. Keys are namespaced so several
// applications can share one instance. A non-positive ttl falls back to
// DefaultTTL.
func NewRedis(client *redis.Client, namespace string, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, namespace: namespace, ttl: ttl}
}

func (r *Redis) key(sessionID string) string {
	return fmt.Sprintf("%s:record:%s", r.namespace, sessionID)
}

// Load implements RecordStore.
func (r *Redis) Load(ctx context.Context, sessionID string) (canonical.Record, error) {
	raw, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return canonical.Record{}, ErrNotFound
	}
	if err != nil {
		return canonical.Record{}, fmt.Errorf("store: load record: %w", err)
	}

	var rec canonical.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return canonical.Record{}, fmt.Errorf("store: decode record: %w", err)
	}
	return rec, nil
}

// Save implements RecordStore. Each save refreshes the TTL.
func (r *Redis) Save(ctx context.Context, sessionID string, rec canonical.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: encode record: %w", err)
	}
	if err := r.client.Set(ctx, r.key(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("store: save record: %w", err)
	}
	return nil
}

// Delete implements RecordStore.
func (r *Redis) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("store: delete record: %w", err)
	}
	return nil
}
