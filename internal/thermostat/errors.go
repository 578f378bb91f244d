package thermostat

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorKind categorizes a client failure.
type ErrorKind int

const (
	// KindConnection covers transport failures (DNS, refused, reset)
	// and malformed response bodies. A body the client cannot parse is
	// treated as an unreliable device response, not a caller mistake.
	KindConnection ErrorKind = iota

	// KindAuth indicates the device rejected the credentials (401/403)
	KindAuth

	// KindTimeout indicates the request exceeded the configured timeout
	KindTimeout

	// KindValidation indicates a caller-supplied value was rejected
	// locally, before any network I/O
	KindValidation

	// KindHTTP indicates a non-auth HTTP error status from the device
	// (typically a 5xx firmware fault)
	KindHTTP
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection error"
	case KindAuth:
		return "authentication error"
	case KindTimeout:
		return "timeout"
	case KindValidation:
		return "validation error"
	case KindHTTP:
		return "http error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is the single error type returned by this package. Every
// failure path produces an *Error; callers dispatch on Kind or use the
// Is* helpers.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int   // HTTP status code, when applicable
	Err        error // underlying cause, when any
	Host       string
}

func (e *Error) Error() string {
	if e == nil {
		return "thermostat error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// newConnectionError wraps a transport-level failure.
func newConnectionError(message string, err error) *Error {
	return &Error{Kind: KindConnection, Message: message, Err: err}
}

// newAuthError reports rejected credentials.
func newAuthError(message string, statusCode int) *Error {
	return &Error{Kind: KindAuth, Message: message, StatusCode: statusCode}
}

// newTimeoutError reports an exceeded request deadline.
func newTimeoutError(message string, err error) *Error {
	return &Error{Kind: KindTimeout, Message: message, Err: err}
}

// newValidationError reports a locally rejected input value.
func newValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// newParseError reports a malformed response body. Per the error
// contract, an unparsable body is a connection-kind failure.
func newParseError(message string, err error) *Error {
	return &Error{Kind: KindConnection, Message: message, Err: err}
}

// newHTTPError reports a non-auth HTTP error status.
func newHTTPError(statusCode int, message string) *Error {
	return &Error{Kind: KindHTTP, Message: message, StatusCode: statusCode}
}

// classifyTransportError maps an error returned by the HTTP transport
// to the package taxonomy. Timeouts and context deadline expiry become
// KindTimeout; everything else is KindConnection.
func classifyTransportError(err error, host string) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &Error{
			Kind:    KindTimeout,
			Message: fmt.Sprintf("request to %s timed out", host),
			Err:     err,
			Host:    host,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Kind:    KindConnection,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
			Host:    host,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &Error{
				Kind:    KindConnection,
				Message: fmt.Sprintf("device at %s refused connection", host),
				Err:     err,
				Host:    host,
			}
		}
		if errors.Is(opErr.Err, syscall.EHOSTUNREACH) || errors.Is(opErr.Err, syscall.ENETUNREACH) {
			return &Error{
				Kind:    KindConnection,
				Message: fmt.Sprintf("device at %s unreachable", host),
				Err:     err,
				Host:    host,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return &Error{
				Kind:    KindTimeout,
				Message: fmt.Sprintf("request to %s timed out", host),
				Err:     err,
				Host:    host,
			}
		}
		return classifyTransportError(urlErr.Err, host)
	}

	return &Error{
		Kind:    KindConnection,
		Message: fmt.Sprintf("request to %s failed", host),
		Err:     err,
		Host:    host,
	}
}

// IsConnectionError reports whether err is a connection-kind failure.
func IsConnectionError(err error) bool {
	return errorKindIs(err, KindConnection)
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	return errorKindIs(err, KindAuth)
}

// IsTimeoutError reports whether err is a timeout.
func IsTimeoutError(err error) bool {
	return errorKindIs(err, KindTimeout)
}

// IsValidationError reports whether err is a local validation failure.
func IsValidationError(err error) bool {
	return errorKindIs(err, KindValidation)
}

// IsHTTPError reports whether err is a non-auth HTTP error status.
func IsHTTPError(err error) bool {
	return errorKindIs(err, KindHTTP)
}

func errorKindIs(err error, kind ErrorKind) bool {
	var terr *Error
	if errors.As(err, &terr) {
		return terr.Kind == kind
	}
	return false
}
