// Package errors provides custom error types for the advisor API client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrRequestFailed is the umbrella condition covering network failure,
	// non-2xx status and malformed response bodies. All typed errors in
	// this package match it via errors.Is.
	ErrRequestFailed = errors.New("request failed")

	ErrInvalidResponse = errors.New("invalid response format")
	ErrNoAnswer        = errors.New("no answer in response")
)

// NetworkError represents a transport-level failure
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("network error at %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *NetworkError) Is(target error) bool {
	if target == ErrRequestFailed {
		return true
	}
	_, ok := target.(*NetworkError)
	return ok
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// APIError represents a non-2xx response from the advisor service
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// Is allows comparison with sentinel errors
func (e *APIError) Is(target error) bool {
	if target == ErrRequestFailed {
		return true
	}
	_, ok := target.(*APIError)
	return ok
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// ParseError represents a response body that could not be interpreted
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrRequestFailed || target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message}
}

// IsNetworkError reports whether err is a transport-level failure
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsParseError reports whether err is a malformed-response failure
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// GetHTTPStatus extracts the HTTP status code from an APIError, or 0
func GetHTTPStatus(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint from a structured error, or ""
func GetEndpoint(err error) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Endpoint
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Endpoint
	}
	return ""
}
