package source

import (
	"math"
	"math/rand"
	"time"
)

// Config holds retry parameters for a file read.
type Config struct {
	// MaxAttempts is the maximum number of attempts (default 4). The
	// initial read counts as attempt 1.
	MaxAttempts int

	// InitialDelay is the base delay before the first retry (default
	// 20ms — local disk I/O, not a network round trip).
	InitialDelay time.Duration

	// MaxDelay caps the backoff (default 200ms).
	MaxDelay time.Duration

	// Multiplier is the exponential backoff multiplier (default 2.0).
	Multiplier float64

	// Jitter adds randomness to prevent thundering herd (default 0.1).
	Jitter float64
}

// DefaultConfig returns the default retry configuration for source reads.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  4,
		InitialDelay: 20 * time.Millisecond,
		MaxDelay:     200 * time.Millisecond,
		Multiplier:   2.0,
		Jitter:       0.1,
	}
}

// Disabled returns a configuration that disables retries (single attempt).
func Disabled() Config {
	return Config{MaxAttempts: 1}
}

// Delay calculates the backoff for a given 0-indexed attempt.
func (c Config) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt))
	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}
	if c.Jitter > 0 {
		delay *= 1.0 + (rand.Float64()*2-1)*c.Jitter
	}
	return time.Duration(delay)
}
