package retry

import (
	"errors"
	"net"
	"syscall"

	"github.com/spetersoncode/toolschema"
)

// IsTransient reports whether err is worth another attempt.
//
// A toolschema.CategorizedError decides by its category. Otherwise a 429 or
// 5xx status (from any error with a StatusCode method) is transient, as are
// network timeouts, temporary DNS failures and refused, reset or timed-out
// connections.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce toolschema.CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == toolschema.ErrorTransient
	}

	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) && retryableStatus(sc.StatusCode()) {
		return true
	}
	return networkFailure(err)
}

func retryableStatus(code int) bool {
	return code == 429 || code/100 == 5
}

var retryableErrno = map[syscall.Errno]bool{
	syscall.ECONNRESET:   true,
	syscall.ECONNREFUSED: true,
	syscall.ETIMEDOUT:    true,
}

// networkFailure looks through the wrap chain, including *url.Error, which
// unwraps to its cause.
func networkFailure(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var errno syscall.Errno
	return errors.As(err, &errno) && retryableErrno[errno]
}
