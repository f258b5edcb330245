package client

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError indicates the backend could not be reached at all: no
// HTTP response was received (connection refused, DNS failure, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RequestError indicates the backend answered with a non-2xx HTTP status.
// Detail carries the backend's error body when it could be decoded.
type RequestError struct {
	Status     int
	StatusText string
	Detail     string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d %s: %s", e.Status, e.StatusText, e.Detail)
	}
	return fmt.Sprintf("backend returned %d %s", e.Status, e.StatusText)
}

// BackendError indicates a 2xx response whose envelope reported
// success=false with an error message.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %s", e.Message)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRequest reports whether err is a RequestError.
func IsRequest(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// IsBackend reports whether err is a BackendError.
func IsBackend(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

func newRequestError(status int, detail string) *RequestError {
	return &RequestError{
		Status:     status,
		StatusText: http.StatusText(status),
		Detail:     detail,
	}
}
