package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelhub/platform/internal/pkg/models"
)

func setupMiniredisClient(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisClient{Client: client}
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		Password: "",
		DB:       0,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	_, client := setupMiniredisClient(t)
	ctx := context.Background()

	err := client.Set(ctx, "auth:test", "value", time.Minute)
	require.NoError(t, err)

	val, err := client.Get(ctx, "auth:test")
	require.NoError(t, err)
	assert.Equal(t, "value", val)

	err = client.Delete(ctx, "auth:test")
	require.NoError(t, err)

	_, err = client.Get(ctx, "auth:test")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_IncrWithTTL(t *testing.T) {
	mr, client := setupMiniredisClient(t)
	ctx := context.Background()

	// First increment creates the counter and starts the window
	count, err := client.IncrWithTTL(ctx, "auth:counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	ttl, err := client.TTL(ctx, "auth:counter")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	// Subsequent increments do not reset the window
	mr.FastForward(30 * time.Second)
	count, err = client.IncrWithTTL(ctx, "auth:counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ttl, err = client.TTL(ctx, "auth:counter")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, ttl)

	// Counter resets only via TTL expiry
	mr.FastForward(time.Minute)
	count, err = client.IncrWithTTL(ctx, "auth:counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisClient_IncrWithTTL_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectIncr("auth:counter").SetErr(redis.ErrClosed)

	_, err := client.IncrWithTTL(context.Background(), "auth:counter", time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to increment counter")
	assert.NoError(t, mock.ExpectationsWereMet())
}
