package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Actions with their own budget. Anything else uses the default policy.
const (
	ActionLogin = "login"
	ActionApply = "apply"
	ActionView  = "view"
)

// Policy is a token bucket refilled continuously to Burst per Per.
type Policy struct {
	Burst int
	Per   time.Duration
}

var policies = map[string]Policy{
	ActionLogin: {Burst: 5, Per: time.Minute},
	ActionApply: {Burst: 10, Per: time.Minute},
	ActionView:  {Burst: 60, Per: time.Minute},
}

var defaultPolicy = Policy{Burst: 20, Per: time.Minute}

// PolicyFor returns the budget applied to action.
func PolicyFor(action string) Policy {
	if p, ok := policies[action]; ok {
		return p
	}
	return defaultPolicy
}

type bucket struct {
	limiter  *rate.Limiter
	burst    int
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client and action.
type RateLimiter struct {
	buckets map[string]*bucket
	mutex   sync.Mutex
	now     func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (rl *RateLimiter) bucketFor(clientID, action string) *bucket {
	key := clientID + ":" + action

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		p := PolicyFor(action)
		every := p.Per / time.Duration(p.Burst)
		b = &bucket{
			limiter: rate.NewLimiter(rate.Every(every), p.Burst),
			burst:   p.Burst,
		}
		rl.buckets[key] = b
	}
	b.lastSeen = rl.now()
	return b
}

// Allow consumes a token for the client's action. When the bucket is empty
// it reports how long until the next token.
func (rl *RateLimiter) Allow(clientID, action string) (bool, time.Duration) {
	b := rl.bucketFor(clientID, action)
	now := rl.now()

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, PolicyFor(action).Per
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// GetStatus returns the tokens left and the bucket size for a client action.
func (rl *RateLimiter) GetStatus(clientID, action string) (tokens int, maxTokens int) {
	key := clientID + ":" + action

	rl.mutex.Lock()
	b, ok := rl.buckets[key]
	rl.mutex.Unlock()

	if !ok {
		return 0, 0
	}
	return int(b.limiter.TokensAt(rl.now())), b.burst
}

// Cleanup drops buckets idle for more than an hour.
func (rl *RateLimiter) Cleanup() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > time.Hour {
			delete(rl.buckets, key)
		}
	}
}

// StartCleanupRoutine runs Cleanup periodically until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}
