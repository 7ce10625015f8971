package ipapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrClientClosed is returned by every operation attempted after Close,
// before any network activity.
var ErrClientClosed = errors.New("ipapi: client is closed")

// InvalidArgumentError reports malformed caller input, raised before any
// network activity and never retried.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "ipapi: invalid argument: " + e.Reason
}

// HTTPError reports an unexpected response status from the service.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("ipapi: unexpected HTTP %d from service", e.Status)
}

// TooManyRequestsError reports quota exhaustion on a keyed client. Keyless
// clients never see it: their throttling is absorbed by the rate-limit wait
// loop inside the fetch engine.
type TooManyRequestsError struct {
	Status int
}

func (e *TooManyRequestsError) Error() string {
	return fmt.Sprintf("ipapi: too many requests (%d) while using an API key; check the key's quota", e.Status)
}

// TooLargeBatchError reports a batch request exceeding the size the service
// accepts. It indicates a batch size configured above the service's cap.
type TooLargeBatchError struct {
	Status int
}

func (e *TooLargeBatchError) Error() string {
	return fmt.Sprintf("ipapi: batch size too large (%d)", e.Status)
}

// AuthError reports a rejected API key.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("ipapi: forbidden (%d); check your API key", e.Status)
}

// TransportError wraps a connection-level failure talking to the service.
// The fetch engine retries these up to the configured attempt budget.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ipapi: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// statusError maps a response status to the error taxonomy. A nil return
// means the body carries the response payload.
func statusError(status int) error {
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusTooManyRequests:
		return &TooManyRequestsError{Status: status}
	case http.StatusUnprocessableEntity:
		return &TooLargeBatchError{Status: status}
	case http.StatusForbidden:
		return &AuthError{Status: status}
	default:
		return &HTTPError{Status: status}
	}
}
