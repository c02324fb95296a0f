package retry

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigPresets(t *testing.T) {
	assert.Equal(t, Config{
		Attempts:  3,
		BaseDelay: time.Second,
		MaxDelay:  30 * time.Second,
		Factor:    2,
		Jitter:    0.1,
	}, DefaultConfig())
	assert.Equal(t, Config{Attempts: 1}, Disabled())

	base := DefaultConfig()
	assert.Equal(t, 5, base.WithAttempts(5).Attempts)
	assert.Equal(t, 1, base.WithAttempts(-2).Attempts)
	assert.Equal(t, 3, base.Attempts, "copies are independent")

	l := slog.New(slog.DiscardHandler)
	assert.Same(t, l, base.WithLogger(l).Logger)
	assert.Nil(t, base.Logger)
}

func TestBackoff(t *testing.T) {
	cfg := Config{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Factor: 2}

	tests := []struct {
		retry int
		want  time.Duration
	}{
		{-3, 100 * time.Millisecond},
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{4, time.Second},
		{20, time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Backoff(tt.retry), "retry %d", tt.retry)
	}
}

func TestBackoffJitter(t *testing.T) {
	cfg := Config{BaseDelay: time.Second, MaxDelay: time.Minute, Factor: 2, Jitter: 0.2}

	seen := make(map[time.Duration]bool)
	for range 200 {
		d := cfg.Backoff(0)
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
		seen[d] = true
	}
	assert.Greater(t, len(seen), 1)
}
