package asana

import (
	"errors"
	"net/http"
)

const (
	unknownErrorMessage = "Unknown error"
	decodeErrorMessage  = "Failed to deserialize response"
)

// ValidationError is returned before any request is sent when a required
// argument is empty or nil.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigError is returned by New for an unusable authentication setup.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// APIError reports a non-2xx response. Message is the first server error
// message, or "Unknown error" when the body carried none.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []ErrorEntry
	// Sync is the fresh token an events request gets back with a 412.
	Sync string
}

func (e *APIError) Error() string {
	return "API Error: " + e.Message
}

// DecodeError reports a 2xx response whose body could not be read as the
// expected envelope.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return decodeErrorMessage
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var errMissingData = errors.New("response envelope has no data")

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsAPIError(err error) bool {
	var a *APIError
	return errors.As(err, &a)
}

func IsNotFound(err error) bool {
	var a *APIError
	return errors.As(err, &a) && a.StatusCode == http.StatusNotFound
}
