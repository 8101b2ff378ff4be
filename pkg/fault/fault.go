package fault

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrValidation ErrorType = iota
	ErrNotFound
	ErrInternal
)

// Fault is the error type services return; the API layer maps its Type
// to an HTTP status and only exposes Message to clients.
type Fault struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Fault) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.typeString(), e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.typeString(), e.Message)
}

// Unwrap allows errors.Is and errors.As to work.
func (e *Fault) Unwrap() error {
	return e.Err
}

func (e *Fault) typeString() string {
	switch e.Type {
	case ErrValidation:
		return "ValidationError"
	case ErrNotFound:
		return "NotFound"
	case ErrInternal:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// NewValidationError creates an error for missing or malformed input.
func NewValidationError(msg string, err error) error {
	return &Fault{Type: ErrValidation, Message: msg, Err: err}
}

// NewNotFoundError creates an error for an id that resolves to nothing.
func NewNotFoundError(msg string, err error) error {
	return &Fault{Type: ErrNotFound, Message: msg, Err: err}
}

// NewInternalError creates an error for store or serialization failures.
func NewInternalError(msg string, err error) error {
	return &Fault{Type: ErrInternal, Message: msg, Err: err}
}

func IsValidation(err error) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Type == ErrValidation
	}
	return false
}

func IsNotFound(err error) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Type == ErrNotFound
	}
	return false
}

// Message returns the client-safe message of a fault, or a generic
// fallback for errors that are not faults.
func Message(err error) string {
	var f *Fault
	if errors.As(err, &f) {
		return f.Message
	}
	return "internal server error"
}
