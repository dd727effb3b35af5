package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginBudget(t *testing.T) {
	rl := NewRateLimiter()
	now := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		ok, wait := rl.Allow("1.2.3.4", ActionLogin)
		assert.True(t, ok, "attempt %d", i)
		assert.Zero(t, wait)
	}

	ok, wait := rl.Allow("1.2.3.4", ActionLogin)
	assert.False(t, ok)
	assert.InDelta(t, float64(12*time.Second), float64(wait), float64(time.Millisecond))

	ok, _ = rl.Allow("5.6.7.8", ActionLogin)
	assert.True(t, ok, "clients have separate buckets")

	now = now.Add(12 * time.Second)
	ok, _ = rl.Allow("1.2.3.4", ActionLogin)
	assert.True(t, ok, "one token refilled")
}

func TestStatusAndCleanup(t *testing.T) {
	rl := NewRateLimiter()
	now := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	tokens, max := rl.GetStatus("c", ActionView)
	assert.Zero(t, tokens)
	assert.Zero(t, max)

	rl.Allow("c", ActionView)
	tokens, max = rl.GetStatus("c", ActionView)
	assert.Equal(t, 59, tokens)
	assert.Equal(t, 60, max)

	assert.Equal(t, 20, PolicyFor("something-else").Burst)

	now = now.Add(2 * time.Hour)
	rl.Cleanup()
	_, max = rl.GetStatus("c", ActionView)
	assert.Zero(t, max)
}
