package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}

// IdempotencyGuard records handled event IDs so redelivered messages are
// processed at most once per consumer. Release frees a claimed event id so a
// failed handler can be retried on redelivery.
type IdempotencyGuard interface {
	FirstDelivery(ctx context.Context, consumerName, eventID string) (bool, error)
	Release(ctx context.Context, consumerName, eventID string) error
}
