package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxsarthi/taxsarthi/internal/config"
)

func TestNewDownloadLimiter_NoRedis(t *testing.T) {
	limiter := NewDownloadLimiter(config.Config{})
	assert.Nil(t, limiter)

	// A nil limiter admits everything.
	allowed, err := limiter.Allow(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNewDownloadLimiter_WithRedis(t *testing.T) {
	limiter := NewDownloadLimiter(config.Config{RedisAddr: "localhost:6379"})
	require.NotNil(t, limiter)
	assert.NotNil(t, limiter.bucket)
}
