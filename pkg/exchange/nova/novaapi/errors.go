package novaapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// UsageError is returned when a method can not be classified or
// an argument is outside of its allowed literal values. No request is sent.
type UsageError struct {
	Method string
	Reason string
}

func newUsageError(method string, format string, args ...interface{}) *UsageError {
	return &UsageError{Method: method, Reason: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return "nova usage error: " + e.Reason
}

// TransportError wraps network failures and non-2xx responses.
// StatusCode is zero when no response was received.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nova transport error: %s %s: %v", e.Method, e.URL, e.Err)
	}

	return fmt.Sprintf("nova transport error: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, string(e.Body))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthConfigurationError is returned when a private method is called without an api key or secret.
type AuthConfigurationError struct {
	Field string
}

func (e *AuthConfigurationError) Error() string {
	return fmt.Sprintf("nova auth configuration error: empty api %s", e.Field)
}

func IsUsageError(err error) bool {
	var target *UsageError
	return errors.As(err, &target)
}

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsAuthConfigurationError(err error) bool {
	var target *AuthConfigurationError
	return errors.As(err, &target)
}
