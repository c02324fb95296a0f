// Package retry repeats remote calls that fail with transient errors,
// waiting an exponentially growing delay between attempts.
package retry

import (
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// Config controls how Do repeats a call.
//
// The first call is attempt one; Attempts bounds the total. The wait before
// retry n (counting from zero) is BaseDelay*Factor^n capped at MaxDelay, then
// scaled by a random factor in [1-Jitter, 1+Jitter].
type Config struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Factor    float64
	Jitter    float64

	// Logger gets a warning before each wait. Nil is silent.
	Logger *slog.Logger
}

// DefaultConfig allows three attempts, starting at one second and doubling
// up to thirty, with ten percent jitter.
func DefaultConfig() Config {
	return Config{
		Attempts:  3,
		BaseDelay: time.Second,
		MaxDelay:  30 * time.Second,
		Factor:    2,
		Jitter:    0.1,
	}
}

// Disabled makes a single attempt.
func Disabled() Config {
	return Config{Attempts: 1}
}

// WithAttempts returns c allowing n attempts; n below one means one.
func (c Config) WithAttempts(n int) Config {
	c.Attempts = max(n, 1)
	return c
}

// WithLogger returns c reporting retries to l.
func (c Config) WithLogger(l *slog.Logger) Config {
	c.Logger = l
	return c
}

// Backoff is the wait before retry n. Negative n is treated as zero.
func (c Config) Backoff(n int) time.Duration {
	wait := float64(c.BaseDelay) * math.Pow(c.Factor, float64(max(n, 0)))
	wait = math.Min(wait, float64(c.MaxDelay))
	if c.Jitter > 0 {
		wait *= 1 + c.Jitter*(2*rand.Float64()-1)
	}
	return time.Duration(wait)
}
