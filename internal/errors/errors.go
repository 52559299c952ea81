// Package errors defines the structured error type shared by the SDE
// configuration loader, builders and executors, along with a collector
// used to aggregate results across multiple components.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeBuild      ErrorType = "build"
	ErrorTypeDependency ErrorType = "dependency"
	ErrorTypeTest       ErrorType = "test"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
)

// SDEError is a structured error type with component context.
type SDEError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Component   string
	Recoverable bool
}

// Error implements the error interface.
func (e *SDEError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Component != "" {
		parts = append(parts, "component:"+e.Component)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *SDEError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *SDEError) Is(target error) bool {
	var t *SDEError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithComponent adds component context to the error.
func (e *SDEError) WithComponent(component string) *SDEError {
	e.Component = component

	return e
}

// NewConfigError creates a configuration error. Configuration errors on a
// single component descriptor are recoverable: the loader skips the
// component and continues.
func NewConfigError(code, message string) *SDEError {
	return &SDEError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewBuildError creates a build error.
func NewBuildError(code, message string, cause error) *SDEError {
	return &SDEError{
		Type:        ErrorTypeBuild,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewDependencyError creates a dependency resolution error.
func NewDependencyError(code, message string) *SDEError {
	return &SDEError{
		Type:        ErrorTypeDependency,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewTestError creates a test execution error.
func NewTestError(code, message string, cause error) *SDEError {
	return &SDEError{
		Type:        ErrorTypeTest,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *SDEError {
	return &SDEError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *SDEError {
	return &SDEError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var se *SDEError
	if errors.As(err, &se) {
		return se.Recoverable
	}

	return false
}

// IsConfigError checks if an error is configuration-related.
func IsConfigError(err error) bool {
	var se *SDEError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeConfig
	}

	return false
}

// IsDependencyError checks if an error is dependency-resolution-related.
func IsDependencyError(err error) bool {
	var se *SDEError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeDependency
	}

	return false
}
