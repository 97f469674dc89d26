// Package redis provides short-lived coordination primitives backed by Redis.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CallbackGuard deduplicates gateway callbacks across process instances.
// The database claim is the source of truth for idempotency; the guard in
// front of it absorbs retry storms from the provider without hitting the
// orders table for every duplicate.
type CallbackGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCallbackGuard creates a guard whose locks expire after ttl.
func NewCallbackGuard(rdb *redis.Client, ttl time.Duration) *CallbackGuard {
	return &CallbackGuard{rdb: rdb, ttl: ttl}
}

// TryAcquire takes the processing lock for one callback delivery.
// Returns false when another delivery of the same callback is already
// being processed or was processed within the TTL window.
func (g *CallbackGuard) TryAcquire(ctx context.Context, orderID, transactionID string) (bool, error) {
	return g.rdb.SetNX(ctx, "payment:cb:"+orderID+":"+transactionID, "1", g.ttl).Result()
}

// Release drops the lock early so a failed delivery can be retried before
// the TTL expires.
func (g *CallbackGuard) Release(ctx context.Context, orderID, transactionID string) error {
	return g.rdb.Del(ctx, "payment:cb:"+orderID+":"+transactionID).Err()
}
