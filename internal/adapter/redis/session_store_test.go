package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

// newTestClient connects to the Redis server named by TEST_REDIS_ADDRESS and
// skips the test when it is unset.
func newTestClient(t *testing.T) *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDRESS not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	store := NewSessionStore(client, time.Minute)

	id := uuid.NewString()
	_, err := store.Get(ctx, id)
	require.ErrorIs(t, err, port.ErrSessionNotFound)

	sess := &domain.Session{
		ID:          id,
		Description: "running shoes for women",
		Extracted:   map[string]any{"product": "running shoes"},
		Brief:       domain.Brief{Product: "running shoes", Budget: "300"},
		Missing:     []string{"country"},
		CreatedAt:   time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, sess.Brief, got.Brief)
	assert.Equal(t, sess.Missing, got.Missing)
	assert.Equal(t, "running shoes", got.Extracted["product"])
	assert.True(t, sess.CreatedAt.Equal(got.CreatedAt))

	ttl, err := client.TTL(ctx, key(id)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, id))
	require.ErrorIs(t, store.Delete(ctx, id), port.ErrSessionNotFound)
}
