// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Session errors
var (
	ErrAuthRequired = errors.New("authentication required")
	ErrForbidden    = errors.New("insufficient permissions")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Remote errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrRemoteRejected   = errors.New("request rejected by remote service")
	ErrTransportFailure = errors.New("remote service unreachable")
)

// Orchestration errors
var (
	ErrCompoundPartialFailure = errors.New("compound transaction partially applied")
	ErrInconsistentRental     = errors.New("rental returned flag and return date disagree")
)

// Input errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// Optional infrastructure errors
var (
	ErrStorageUnavailable = errors.New("artwork storage is not configured")
	ErrJournalUnavailable = errors.New("transaction journal is not configured")
)

// RemoteError is a non-2xx response from the rental service.
type RemoteError struct {
	StatusCode int
	Message    string
}

// NewRemoteError builds a RemoteError, falling back to a generic description
// when the server sent no message.
func NewRemoteError(statusCode int, message string) *RemoteError {
	message = strings.TrimSpace(message)
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", statusCode)
		if text := http.StatusText(statusCode); text != "" {
			message = fmt.Sprintf("request failed: %s", strings.ToLower(text))
		}
	}
	return &RemoteError{StatusCode: statusCode, Message: message}
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Is lets callers match a RemoteError against the taxonomy sentinels.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemoteRejected:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrAuthRequired:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// TransportError is a failure where no response was received at all.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrTransportFailure.Error(), e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransportFailure.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailure
}

// PartialFailureError reports a compound transaction that failed after some
// of its steps had already been committed on the server.
type PartialFailureError struct {
	Saga      string
	Committed []string
	Failed    []string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: %d step(s) committed, %d failed: %v",
		e.Saga, len(e.Committed), len(e.Failed), e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

// Is matches ErrCompoundPartialFailure.
func (e *PartialFailureError) Is(target error) bool {
	return target == ErrCompoundPartialFailure
}

// Message extracts the user-facing message from any error in the taxonomy.
func Message(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	return err.Error()
}
