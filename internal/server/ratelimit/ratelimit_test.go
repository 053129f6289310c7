package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(limit int) *Config {
	return &Config{
		Enabled:     true,
		Limit:       limit,
		Window:      time.Minute,
		ExemptPaths: map[string]bool{"/api/health": true},
	}
}

func TestAllow_UnderLimit(t *testing.T) {
	l := NewLimiter(testConfig(3))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("client-a", "/api/v1/analyze")
		assert.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 3, info.Limit)
	}
}

func TestAllow_OverLimit(t *testing.T) {
	l := NewLimiter(testConfig(2))
	defer l.Stop()

	l.Allow("client-a", "/api/v1/analyze")
	l.Allow("client-a", "/api/v1/analyze")
	allowed, info := l.Allow("client-a", "/api/v1/analyze")

	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(1))
	defer l.Stop()

	allowed, _ := l.Allow("client-a", "/api/v1/analyze")
	require.True(t, allowed)
	denied, _ := l.Allow("client-a", "/api/v1/analyze")
	require.False(t, denied)

	allowed, _ = l.Allow("client-b", "/api/v1/analyze")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestAllow_ExemptPath(t *testing.T) {
	l := NewLimiter(testConfig(1))
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("client-a", "/api/health")
		assert.True(t, allowed)
	}
}

func TestAllow_Disabled(t *testing.T) {
	cfg := testConfig(1)
	cfg.Enabled = false
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("client-a", "/api/v1/analyze")
		assert.True(t, allowed)
	}
}

func TestNewLimiter_NilConfigUsesDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("client-a", "/api/v1/analyze")
	assert.True(t, allowed)
	assert.Equal(t, 60, info.Limit)
}

func TestRemoveIdle(t *testing.T) {
	l := NewLimiter(testConfig(5))
	defer l.Stop()

	l.Allow("client-a", "/api/v1/analyze")
	l.mu.Lock()
	l.clients["client-a"].lastSeen = time.Now().Add(-2 * time.Hour)
	l.mu.Unlock()

	l.removeIdle()

	l.mu.Lock()
	_, ok := l.clients["client-a"]
	l.mu.Unlock()
	assert.False(t, ok)
}
