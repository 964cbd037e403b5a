package idempotency

import (
	"context"
	"fmt"
	"time"

	"aura-service/internal/app/contracts"
)

const (
	keyFormat = "idempotency:%s:%s"

	// Handled event IDs are kept long enough to absorb broker redeliveries
	// without growing the keyspace forever.
	retention = 72 * time.Hour
)

type redisGuard struct {
	redisRepository contracts.RedisRepository
}

// NewRedisGuard returns an IdempotencyGuard that claims event IDs with SETNX
// so only the first delivery of an event is processed per consumer.
func NewRedisGuard(redisRepository contracts.RedisRepository) contracts.IdempotencyGuard {
	return &redisGuard{redisRepository: redisRepository}
}

func (g *redisGuard) FirstDelivery(ctx context.Context, consumerName, eventID string) (bool, error) {
	key := fmt.Sprintf(keyFormat, consumerName, eventID)
	return g.redisRepository.TrySetNX(ctx, key, 1, retention)
}

// Release frees a claimed event id after a failed handler so the broker's
// redelivery is not swallowed by the guard.
func (g *redisGuard) Release(ctx context.Context, consumerName, eventID string) error {
	key := fmt.Sprintf(keyFormat, consumerName, eventID)
	return g.redisRepository.Delete(ctx, key)
}
