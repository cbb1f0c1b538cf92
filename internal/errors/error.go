package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig    Category = "config"
	CategoryDiscovery Category = "discovery"
	CategoryGenerate  Category = "generate"
	CategoryCLI       Category = "cli"
)

// PagesError is a structured error with a stable code, a longer
// explanation and a fix suggestion for terminal display.
type PagesError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, discovery, etc.).
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
func (e *PagesError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PagesError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *PagesError) WithDetail(d string) *PagesError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PagesError) WithSuggestion(s string) *PagesError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *PagesError) Wrap(err error) *PagesError {
	e.Wrapped = err
	return e
}

// New creates a PagesError from a registered error code.
func New(code string) *PagesError {
	template, ok := registry[code]
	if !ok {
		return &PagesError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PagesError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new PagesError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PagesError {
	return &PagesError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PagesError.
func FromError(err error, code string) *PagesError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PagesError); ok {
		return pe
	}
	return New(code).Wrap(err)
}
