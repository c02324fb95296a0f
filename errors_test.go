package toolschema

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want ErrorCategory
	}{
		{429, ErrorTransient},
		{500, ErrorTransient},
		{503, ErrorTransient},
		{599, ErrorTransient},
		{401, ErrorPermanent},
		{403, ErrorPermanent},
		{400, ErrorUserInput},
		{404, ErrorUserInput},
		{422, ErrorUserInput},
		{409, ErrorPermanent},
		{600, ErrorPermanent},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeStatus(tt.code))
		})
	}
}

func TestError(t *testing.T) {
	t.Run("message includes cause", func(t *testing.T) {
		err := NewPermanentError("request failed", 401, errors.New("bad key"))
		assert.Equal(t, "request failed: bad key", err.Error())
		assert.Equal(t, "request failed", (&Error{Msg: "request failed"}).Error())
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := NewTransientError("retry me", 503, cause)
		assert.ErrorIs(t, err, cause)
		assert.True(t, err.Retryable())
		assert.Equal(t, 503, err.StatusCode())
	})
}

func TestConfigError(t *testing.T) {
	err := fmt.Errorf("load: %w", NewConfigError("api key not set"))

	assert.True(t, IsConfigMissing(err))
	assert.ErrorIs(t, err, ErrConfigMissing)
	assert.False(t, IsRemoteRejection(err))
	assert.False(t, IsTransient(err))
	assert.Equal(t, 0, StatusCodeOf(err))
}

func TestRemoteError(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		transient  bool
		permanent  bool
		userInput  bool
		retryAfter time.Duration
	}{
		{name: "rate limited", code: 429, transient: true, retryAfter: 2 * time.Second},
		{name: "unauthorized", code: 401, permanent: true},
		{name: "bad request", code: 400, userInput: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("chat: %w", NewRemoteError("rejected", tt.code, `{"error":{}}`, tt.retryAfter, nil))

			assert.True(t, IsRemoteRejection(err))
			assert.False(t, IsConfigMissing(err))
			assert.Equal(t, tt.transient, IsTransient(err))
			assert.Equal(t, tt.permanent, IsPermanent(err))
			assert.Equal(t, tt.userInput, IsUserInput(err))
			assert.Equal(t, tt.code, StatusCodeOf(err))
			assert.Equal(t, tt.retryAfter, RetryAfterOf(err))

			var e *Error
			assert.ErrorAs(t, err, &e)
			assert.Equal(t, `{"error":{}}`, e.Body)
		})
	}
}

func TestPredicatesOnPlainErrors(t *testing.T) {
	err := errors.New("plain")

	assert.False(t, IsConfigMissing(err))
	assert.False(t, IsRemoteRejection(err))
	assert.False(t, IsTransient(err))
	assert.False(t, IsPermanent(err))
	assert.False(t, IsUserInput(err))
	assert.Equal(t, time.Duration(0), RetryAfterOf(err))
}

func TestTransientWithoutStatus(t *testing.T) {
	err := NewTransientError("connection reset", 0, nil)
	assert.True(t, IsTransient(err))
	assert.False(t, IsRemoteRejection(err))
}
