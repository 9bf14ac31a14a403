// Package gmuon structured error types for the non-numeric surfaces
package gmuon

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Argument outside the physical domain
	ErrTypeDomain ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Model-configuration errors (unphysical parameter points)
	ErrTypeConfig
	// Not implemented errors
	ErrTypeNotImplemented
)

// GmuonError represents a structured error with context.  The pure
// evaluation functions never return it (they report and yield NaN);
// it serves the model and driver layers built on top of the core.
type GmuonError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *GmuonError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gmuon %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("gmuon %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *GmuonError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeDomain:
		return "Domain"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeConfig:
		return "Configuration"
	case ErrTypeNotImplemented:
		return "NotImplemented"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewDomainError creates an argument-out-of-physical-domain error
func NewDomainError(op string, message string) error {
	return &GmuonError{
		Type:    ErrTypeDomain,
		Op:      op,
		Message: message,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &GmuonError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewConfigError creates a model-configuration error
func NewConfigError(op string, message string, err error) error {
	return &GmuonError{
		Type:    ErrTypeConfig,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	if e, ok := err.(*GmuonError); ok {
		return e.Type == ErrTypeDomain
	}
	return false
}

// IsConfigError checks if an error is a model-configuration error
func IsConfigError(err error) bool {
	if e, ok := err.(*GmuonError); ok {
		return e.Type == ErrTypeConfig
	}
	return false
}
