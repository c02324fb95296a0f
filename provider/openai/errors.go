package openai

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/openai/openai-go"

	"github.com/spetersoncode/toolschema"
)

// wrapError turns an API rejection into a toolschema remote error that
// keeps the status, the raw body and any Retry-After hint. Transport
// failures pass through for the retry classifier.
func wrapError(err error) error {
	var apiErr *openai.Error
	if err == nil || !errors.As(err, &apiErr) {
		return err
	}

	var wait time.Duration
	if apiErr.Response != nil {
		wait = retryAfter(apiErr.Response.Header.Get("Retry-After"), time.Now())
	}
	return toolschema.NewRemoteError("openai: request rejected", apiErr.StatusCode, apiErr.RawJSON(), wait, err)
}

// retryAfter reads a Retry-After value given in seconds or as an HTTP date
// relative to now. Missing, malformed and past values give zero.
func retryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	at, err := http.ParseTime(value)
	if err != nil {
		return 0
	}
	return max(at.Sub(now), 0)
}
