// Package errors provides custom error types for the Falcon API adapter.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrAuthFailed         = errors.New("authentication failed")
	ErrInvalidArguments   = errors.New("invalid arguments")
)

// ConfigError represents missing or malformed configuration. It is fatal at
// the point of first use and never retried.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

// Is allows comparison with the ErrMissingCredentials sentinel.
func (e *ConfigError) Is(target error) bool {
	if target == ErrMissingCredentials {
		return true
	}
	_, ok := target.(*ConfigError)
	return ok
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// AuthError represents a rejected or malformed token exchange
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("authentication failed [%d]: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// Is allows comparison with the ErrAuthFailed sentinel.
func (e *AuthError) Is(target error) bool {
	if target == ErrAuthFailed {
		return true
	}
	_, ok := target.(*AuthError)
	return ok
}

// NewAuthError creates a new AuthError
func NewAuthError(statusCode int, message string) *AuthError {
	return &AuthError{StatusCode: statusCode, Message: message}
}

// ValidationError represents malformed operation arguments, caught before any
// network call is made.
type ValidationError struct {
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Message)
}

// Is allows comparison with the ErrInvalidArguments sentinel.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidArguments {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError
func NewValidationError(param, message string) *ValidationError {
	return &ValidationError{Param: param, Message: message}
}

// APIError represents a non-success response on any non-auth call
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

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// SessionError represents a failure to establish a real-time-response session
type SessionError struct {
	DeviceID string
	Message  string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session error for device %s: %s", e.DeviceID, e.Message)
}

// NewSessionError creates a new SessionError
func NewSessionError(deviceID, message string) *SessionError {
	return &SessionError{DeviceID: deviceID, Message: message}
}

// CommandError represents a failure of the command-execution step inside an
// established real-time-response session. The session is still torn down
// before this error reaches the caller.
type CommandError struct {
	SessionID string
	Err       error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command execution failed in session %s: %v", e.SessionID, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(sessionID string, err error) *CommandError {
	return &CommandError{SessionID: sessionID, Err: err}
}
