package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ClientLimiter keeps one token bucket per client in process memory.
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewClientLimiter(config RateLimitConfig) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewClientLimiterWithDefaults() *ClientLimiter {
	return NewClientLimiter(DefaultConfig())
}

func (p *ClientLimiter) GetLimiter(key string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[key]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists = p.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.BurstSize)
	p.limiters[key] = limiter
	return limiter
}

// SetClientLimit overrides the defaults for one client.
func (p *ClientLimiter) SetClientLimit(key string, rps float64, burst int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.limiters[key] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (p *ClientLimiter) Allow(_ context.Context, key string) (bool, error) {
	return p.GetLimiter(key).Allow(), nil
}

func (p *ClientLimiter) Wait(ctx context.Context, key string) error {
	return p.GetLimiter(key).Wait(ctx)
}
