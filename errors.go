package toolschema

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrConfigMissing is returned when a required configuration value, such as
// an API key, is not available. No request is made in that case.
var ErrConfigMissing = errors.New("configuration missing")

// ErrorCategory tells a caller what to do about an error.
type ErrorCategory string

const (
	// ErrorTransient: try again later (rate limits, overload, 5xx).
	ErrorTransient ErrorCategory = "transient"
	// ErrorPermanent: retrying will not help (bad credentials, no access).
	ErrorPermanent ErrorCategory = "permanent"
	// ErrorUserInput: the request itself was refused as malformed, for
	// example a tool schema the endpoint does not accept.
	ErrorUserInput ErrorCategory = "user_input"
	// ErrorConfig: local configuration is missing or invalid.
	ErrorConfig ErrorCategory = "config"
)

// CategorizedError is implemented by errors that carry handling metadata.
type CategorizedError interface {
	error
	Category() ErrorCategory
	Retryable() bool
	// StatusCode is the HTTP status of a rejected request, 0 if none.
	StatusCode() int
	// RetryAfter is the delay the server asked for, 0 if none.
	RetryAfter() time.Duration
}

// Error is the CategorizedError returned by this module.
type Error struct {
	Msg        string
	Cat        ErrorCategory
	Code       int
	Body       string // body of a rejected response
	RetryDelay time.Duration
	Cause      error
}

var _ CategorizedError = (*Error)(nil)

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
}

func (e *Error) Unwrap() error             { return e.Cause }
func (e *Error) Category() ErrorCategory   { return e.Cat }
func (e *Error) Retryable() bool           { return e.Cat == ErrorTransient }
func (e *Error) StatusCode() int           { return e.Code }
func (e *Error) RetryAfter() time.Duration { return e.RetryDelay }

// NewConfigError reports missing configuration. The result matches
// ErrConfigMissing under errors.Is.
func NewConfigError(msg string) *Error {
	return &Error{Msg: msg, Cat: ErrorConfig, Cause: ErrConfigMissing}
}

// NewRemoteError reports a non-success response. The category follows from
// statusCode (see CategorizeStatus); body is kept verbatim for diagnostics.
func NewRemoteError(msg string, statusCode int, body string, retryAfter time.Duration, cause error) *Error {
	return &Error{
		Msg:        msg,
		Cat:        CategorizeStatus(statusCode),
		Code:       statusCode,
		Body:       body,
		RetryDelay: retryAfter,
		Cause:      cause,
	}
}

// NewTransientError reports a failure worth retrying.
func NewTransientError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorTransient, Code: statusCode, Cause: cause}
}

// NewPermanentError reports a failure that retrying cannot fix.
func NewPermanentError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorPermanent, Code: statusCode, Cause: cause}
}

// CategorizeStatus maps an HTTP status code to an ErrorCategory.
// Codes without a specific meaning are permanent.
func CategorizeStatus(code int) ErrorCategory {
	switch {
	case code == http.StatusTooManyRequests, code >= 500 && code < 600:
		return ErrorTransient
	case code == http.StatusBadRequest, code == http.StatusNotFound, code == http.StatusUnprocessableEntity:
		return ErrorUserInput
	default:
		return ErrorPermanent
	}
}

// categorized returns the first CategorizedError in err's chain.
func categorized(err error) (CategorizedError, bool) {
	var ce CategorizedError
	ok := errors.As(err, &ce)
	return ce, ok
}

func hasCategory(err error, cat ErrorCategory) bool {
	ce, ok := categorized(err)
	return ok && ce.Category() == cat
}

// IsConfigMissing reports whether err is a configuration-missing error.
func IsConfigMissing(err error) bool {
	return errors.Is(err, ErrConfigMissing) || hasCategory(err, ErrorConfig)
}

// IsRemoteRejection reports whether err is a non-success response from a
// remote endpoint, whatever its category.
func IsRemoteRejection(err error) bool {
	ce, ok := categorized(err)
	return ok && ce.Category() != ErrorConfig && ce.StatusCode() > 0
}

// IsTransient reports whether err is categorized as transient.
func IsTransient(err error) bool { return hasCategory(err, ErrorTransient) }

// IsPermanent reports whether err is categorized as permanent.
func IsPermanent(err error) bool { return hasCategory(err, ErrorPermanent) }

// IsUserInput reports whether err is categorized as a malformed request.
func IsUserInput(err error) bool { return hasCategory(err, ErrorUserInput) }

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	if ce, ok := categorized(err); ok {
		return ce.StatusCode()
	}
	return 0
}

// RetryAfterOf returns the server-requested retry delay carried by err, or 0.
func RetryAfterOf(err error) time.Duration {
	if ce, ok := categorized(err); ok {
		return ce.RetryAfter()
	}
	return 0
}
