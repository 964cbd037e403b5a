package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestRedisGuard_FirstDeliveryClaimsScopedKey(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	guard := NewRedisGuard(redisRepository)

	redisRepository.On("TrySetNX", mock.Anything, "idempotency:billing.examination_created:evt-1", 1, 72*time.Hour).Return(true, nil)

	first, err := guard.FirstDelivery(context.Background(), "billing.examination_created", "evt-1")

	assert.NoError(t, err)
	assert.True(t, first)
	redisRepository.AssertExpectations(t)
}

func TestRedisGuard_SecondDeliveryIsRefused(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	guard := NewRedisGuard(redisRepository)

	redisRepository.On("TrySetNX", mock.Anything, "idempotency:billing.examination_created:evt-1", 1, 72*time.Hour).Return(false, nil)

	first, err := guard.FirstDelivery(context.Background(), "billing.examination_created", "evt-1")

	assert.NoError(t, err)
	assert.False(t, first)
}

func TestRedisGuard_SameEventDifferentConsumers(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	guard := NewRedisGuard(redisRepository)

	// Each consumer claims its own key, so one event fans out to every
	// subscriber exactly once.
	redisRepository.On("TrySetNX", mock.Anything, "idempotency:billing.examination_created:evt-1", 1, 72*time.Hour).Return(true, nil)
	redisRepository.On("TrySetNX", mock.Anything, "idempotency:notifications.analysis_completed:evt-1", 1, 72*time.Hour).Return(true, nil)

	first, err := guard.FirstDelivery(context.Background(), "billing.examination_created", "evt-1")
	assert.NoError(t, err)
	assert.True(t, first)

	first, err = guard.FirstDelivery(context.Background(), "notifications.analysis_completed", "evt-1")
	assert.NoError(t, err)
	assert.True(t, first)
}

func TestRedisGuard_ReleaseDeletesClaim(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	guard := NewRedisGuard(redisRepository)

	redisRepository.On("Delete", mock.Anything, "idempotency:billing.examination_created:evt-1").Return(nil)

	err := guard.Release(context.Background(), "billing.examination_created", "evt-1")

	assert.NoError(t, err)
	redisRepository.AssertExpectations(t)
}
