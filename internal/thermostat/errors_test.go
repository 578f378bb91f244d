package thermostat

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindConnection, "connection error"},
		{KindAuth, "authentication error"},
		{KindTimeout, "timeout"},
		{KindValidation, "validation error"},
		{KindHTTP, "http error"},
		{ErrorKind(99), "ErrorKind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := newAuthError("authentication failed - check username/password", 401)
	want := "authentication error: authentication failed - check username/password"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", err.StatusCode)
	}

	cause := errors.New("boom")
	wrapped := newConnectionError("request failed", cause)
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			want: KindTimeout,
		},
		{
			name: "url error wrapping deadline",
			err:  &url.Error{Op: "Get", URL: "http://device", Err: context.DeadlineExceeded},
			want: KindTimeout,
		},
		{
			name: "dns failure",
			err:  &net.DNSError{Err: "no such host", Name: "airobot-thermostat-t01.local"},
			want: KindConnection,
		},
		{
			name: "connection refused",
			err:  &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
			want: KindConnection,
		},
		{
			name: "host unreachable",
			err:  &net.OpError{Op: "dial", Err: syscall.EHOSTUNREACH},
			want: KindConnection,
		},
		{
			name: "url error wrapping refused",
			err:  &url.Error{Op: "Get", URL: "http://device", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}},
			want: KindConnection,
		},
		{
			name: "unknown error",
			err:  fmt.Errorf("something odd"),
			want: KindConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTransportError(tt.err, "192.168.1.50")
			if got == nil {
				t.Fatal("classifyTransportError returned nil")
			}
			if got.Kind != tt.want {
				t.Errorf("Kind = %v, want %v (message: %s)", got.Kind, tt.want, got.Message)
			}
			if !errors.Is(got, tt.err) && got.Unwrap() == nil {
				t.Error("classified error lost its cause")
			}
		})
	}
}

func TestClassifyTransportErrorNil(t *testing.T) {
	if got := classifyTransportError(nil, "host"); got != nil {
		t.Errorf("classifyTransportError(nil) = %v, want nil", got)
	}
}

func TestKindHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"connection", newConnectionError("x", nil), IsConnectionError},
		{"auth", newAuthError("x", 401), IsAuthError},
		{"timeout", newTimeoutError("x", nil), IsTimeoutError},
		{"validation", newValidationError("x"), IsValidationError},
		{"http", newHTTPError(500, "x"), IsHTTPError},
		{"parse is connection", newParseError("x", nil), IsConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("helper returned false for %v", tt.err)
			}
		})
	}

	// Helpers must not cross-match
	authErr := newAuthError("x", 401)
	if IsConnectionError(authErr) || IsTimeoutError(authErr) || IsValidationError(authErr) || IsHTTPError(authErr) {
		t.Error("auth error matched a different kind helper")
	}

	// And they reject foreign errors
	plain := errors.New("plain")
	if IsConnectionError(plain) || IsAuthError(plain) {
		t.Error("plain error matched a kind helper")
	}
}

func TestKindHelpersThroughWrapping(t *testing.T) {
	inner := newTimeoutError("request timed out", context.DeadlineExceeded)
	wrapped := fmt.Errorf("fetching status: %w", inner)

	if !IsTimeoutError(wrapped) {
		t.Error("IsTimeoutError should see through fmt.Errorf wrapping")
	}
	if IsConnectionError(wrapped) {
		t.Error("wrapped timeout matched IsConnectionError")
	}
}
