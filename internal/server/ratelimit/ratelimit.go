// Package ratelimit provides per-client request limiting for the HTTP API,
// backed by token buckets from golang.org/x/time/rate.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info describes the limiter's view of one decision, used to populate
// X-RateLimit-* and Retry-After headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // requests per window
	Window          time.Duration // sliding window length
	CleanupInterval time.Duration // how often idle clients are dropped
	ExemptPaths     map[string]bool
}

// DefaultConfig allows 60 requests per minute per client and exempts the
// health endpoint.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           60,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
		ExemptPaths:     map[string]bool{"/api/health": true},
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages one token bucket per client ID.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*client
	config  *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter and starts its idle-client cleanup loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	l := &Limiter{
		clients: make(map[string]*client),
		config:  config,
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether a request from clientID to path may proceed.
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	if !l.config.Enabled || l.config.ExemptPaths[path] {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	c, ok := l.clients[clientID]
	if !ok {
		perSecond := rate.Limit(float64(l.config.Limit) / l.config.Window.Seconds())
		c = &client{limiter: rate.NewLimiter(perSecond, l.config.Limit)}
		l.clients[clientID] = c
	}
	c.lastSeen = time.Now()
	allowed := c.limiter.Allow()
	tokens := c.limiter.Tokens()
	l.mu.Unlock()

	if tokens < 0 {
		tokens = 0
	}
	perToken := l.config.Window.Seconds() / float64(l.config.Limit)

	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: int(tokens),
	}
	missing := float64(l.config.Limit) - tokens
	info.ResetTime = time.Now().Add(time.Duration(missing * perToken * float64(time.Second)))
	if !allowed {
		info.RetryAfter = time.Duration((1 - tokens) * perToken * float64(time.Second))
		if info.RetryAfter < 0 {
			info.RetryAfter = 0
		}
	}
	return allowed, info
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// removeIdle drops clients that have not been seen for over an hour.
func (l *Limiter) removeIdle() {
	cutoff := time.Now().Add(-1 * time.Hour)
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, id)
		}
	}
}
