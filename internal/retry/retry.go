package retry

import (
	"context"
	"time"

	"github.com/spetersoncode/toolschema"
)

// Do calls fn until it succeeds, returns an error that is not transient, or
// runs out of attempts. The last error is returned. A wait is cut short by
// ctx, in which case ctx.Err() is returned.
//
// When the error names a Retry-After delay longer than the backoff, Do waits
// that long instead.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	attempts := max(cfg.Attempts, 1)
	for n := 1; ; n++ {
		result, err := fn()
		if err == nil || !IsTransient(err) || n == attempts {
			return result, err
		}

		wait := waitFor(cfg.Backoff(n-1), err)
		if cfg.Logger != nil {
			cfg.Logger.WarnContext(ctx, "retrying request",
				"attempt", n,
				"max_attempts", attempts,
				"delay", wait,
				"error", err,
			)
		}
		if err := sleep(ctx, wait); err != nil {
			var zero T
			return zero, err
		}
	}
}

// waitFor prefers the server's Retry-After when it asks for longer.
func waitFor(backoff time.Duration, err error) time.Duration {
	return max(backoff, toolschema.RetryAfterOf(err))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
