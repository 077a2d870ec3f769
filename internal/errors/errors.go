// Package errors provides the error taxonomy for the agent API client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNetwork         = errors.New("network failure")
	ErrServer          = errors.New("server reported failure")
	ErrInvalidResponse = errors.New("invalid response format")
	ErrTimeout         = errors.New("request timed out")
)

// NetworkError represents a transport failure (connection refused, DNS, reset).
type NetworkError struct {
	Endpoint string
	Cause    error
}

func (e *NetworkError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("network error at %s", e.Endpoint)
	}
	return fmt.Sprintf("network error at %s: %v", e.Endpoint, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// Is allows comparison with sentinel errors
func (e *NetworkError) Is(target error) bool {
	if target == ErrNetwork {
		return true
	}
	_, ok := target.(*NetworkError)
	return ok
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, cause error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Cause: cause}
}

// ServerError represents a response the server answered but marked as failed,
// either with success:false or with a non-2xx status.
type ServerError struct {
	StatusCode int
	Endpoint   string
	Reason     string
}

func (e *ServerError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "no reason given"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("server error [%d] at %s: %s", e.StatusCode, e.Endpoint, reason)
	}
	return fmt.Sprintf("server error at %s: %s", e.Endpoint, reason)
}

// Is allows comparison with sentinel errors
func (e *ServerError) Is(target error) bool {
	if target == ErrServer {
		return true
	}
	_, ok := target.(*ServerError)
	return ok
}

// NewServerError creates a new ServerError
func NewServerError(statusCode int, endpoint, reason string) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Reason:     reason,
	}
}

// ParseError represents a body that could not be decoded as the expected JSON.
type ParseError struct {
	Message  string
	Endpoint string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Endpoint, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(endpoint, message string) *ParseError {
	return &ParseError{Message: message, Endpoint: endpoint}
}

// TimeoutError represents a request that exceeded the configured timeout
type TimeoutError struct {
	Endpoint string
}

func (e *TimeoutError) Error() string {
	if e.Endpoint == "" {
		return "request timed out"
	}
	return fmt.Sprintf("request timed out: %s", e.Endpoint)
}

// Is allows comparison with sentinel errors
func (e *TimeoutError) Is(target error) bool {
	if target == ErrTimeout {
		return true
	}
	_, ok := target.(*TimeoutError)
	return ok
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(endpoint string) *TimeoutError {
	return &TimeoutError{Endpoint: endpoint}
}

// IsNetworkError reports whether err is a transport failure
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsServerError reports whether err is a logical failure reported by the server
func IsServerError(err error) bool {
	return errors.Is(err, ErrServer)
}

// IsParseError reports whether err is a malformed response body
func IsParseError(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

// IsTimeoutError reports whether err is a request timeout
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// Reason returns the server supplied reason carried by a ServerError, or "".
func Reason(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Reason
	}
	return ""
}

// GetHTTPStatus returns the HTTP status code carried by a ServerError, or 0.
func GetHTTPStatus(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// GetEndpoint returns the endpoint an error occurred at, if known.
func GetEndpoint(err error) string {
	var (
		ne *NetworkError
		se *ServerError
		pe *ParseError
		te *TimeoutError
	)
	switch {
	case errors.As(err, &se):
		return se.Endpoint
	case errors.As(err, &ne):
		return ne.Endpoint
	case errors.As(err, &pe):
		return pe.Endpoint
	case errors.As(err, &te):
		return te.Endpoint
	}
	return ""
}
