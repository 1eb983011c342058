package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	mr := miniredis.RunT(t)

	client, err := NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name        string
		url         string
		expectError bool
	}{
		{
			name:        "Reachable Redis",
			url:         "redis://" + mr.Addr(),
			expectError: false,
		},
		{
			name:        "Invalid URL",
			url:         "invalid://url",
			expectError: true,
		},
		{
			name:        "Empty URL",
			url:         "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url, "test", zap.NewNop())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client.KeyBuilder)
				assert.NoError(t, client.Close())
			}
		})
	}
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client, err := NewClient("redis://"+addr, "test", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClient_IncrWindow(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()
	key := client.KeyBuilder.KeySignupRateLimit("iphash")

	count, ttl, err := client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(20 * time.Second)

	count, ttl, err = client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 40*time.Second, ttl, "window must not be extended by later hits")

	mr.FastForward(41 * time.Second)

	count, _, err = client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "a new window starts after expiry")
}

func TestClient_Health(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	assert.NoError(t, client.Health(ctx))

	mr.Close()
	assert.Error(t, client.Health(ctx))
}

func TestPrefixForLog(t *testing.T) {
	assert.Equal(t, "short:key", prefixForLog("short:key"))
	assert.Equal(t, "prod:signup:ratelimit:ab…", prefixForLog("prod:signup:ratelimit:abcdef0123456789"))
}
