package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategoryRegistry   Category = "registry"
	CategoryRender     Category = "render"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
	CategoryDeploy     Category = "deploy"
)

// PassageError is a structured error with a stable code, a fix suggestion,
// and a documentation link.
type PassageError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (navigation, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *PassageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PassageError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PassageError with the same code.
// This lets callers match registry errors with errors.Is against the
// exported sentinel values without comparing wrapped state.
func (e *PassageError) Is(target error) bool {
	pe, ok := target.(*PassageError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == pe.Code
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers don't need a second
// errors import alongside this package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PassageError) WithSuggestion(s string) *PassageError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *PassageError) WithDetail(d string) *PassageError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *PassageError) Wrap(err error) *PassageError {
	e.Wrapped = err
	return e
}

// New creates a PassageError from a registered error code.
func New(code string) *PassageError {
	template, ok := registry[code]
	if !ok {
		return &PassageError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PassageError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new PassageError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PassageError {
	return &PassageError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PassageError.
func FromError(err error, code string) *PassageError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PassageError); ok {
		return pe
	}
	return New(code).Wrap(err)
}
