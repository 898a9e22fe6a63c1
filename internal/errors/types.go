package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeRender     ErrorType = "render"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeSecurity   ErrorType = "security"
)

// UIError is a structured error raised by the tooling around the component
// library: fixture loading, render-by-name lookup, snapshots and config.
type UIError struct {
	Type      ErrorType
	Code      string
	Message   string
	Cause     error
	Context   map[string]interface{}
	Component string
	Example   string
	FilePath  string
}

// Error implements the error interface.
func (e *UIError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	if e.Component != "" {
		ref := "component:" + e.Component
		if e.Example != "" {
			ref += "/" + e.Example
		}
		parts = append(parts, ref)
	}
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *UIError) Unwrap() error {
	return e.Cause
}

// Is matches another UIError with the same type and code.
func (e *UIError) Is(target error) bool {
	var t *UIError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error.
func (e *UIError) WithContext(key string, value interface{}) *UIError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithComponent adds component context.
func (e *UIError) WithComponent(component string) *UIError {
	e.Component = component
	return e
}

// WithExample adds the fixture example name.
func (e *UIError) WithExample(example string) *UIError {
	e.Example = example
	return e
}

// WithFile adds the file the error came from.
func (e *UIError) WithFile(path string) *UIError {
	e.FilePath = path
	return e
}

// Common error codes.
const (
	ErrCodeComponentNotFound = "ERR_COMPONENT_NOT_FOUND"
	ErrCodeExampleNotFound   = "ERR_EXAMPLE_NOT_FOUND"
	ErrCodeInvalidProps      = "ERR_INVALID_PROPS"
	ErrCodeRender            = "ERR_RENDER"
	ErrCodeFixtureInvalid    = "ERR_FIXTURE_INVALID"
	ErrCodeSnapshotMismatch  = "ERR_SNAPSHOT_MISMATCH"
	ErrCodeSnapshotMissing   = "ERR_SNAPSHOT_MISSING"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound      = "ERR_FILE_NOT_FOUND"
	ErrCodeInvalidPath       = "ERR_INVALID_PATH"
	ErrCodePathTraversal     = "ERR_PATH_TRAVERSAL"
	ErrCodeInvalidOrigin     = "ERR_INVALID_ORIGIN"
)

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *UIError {
	return &UIError{Type: ErrorTypeValidation, Code: code, Message: message}
}

// NewNotFoundError creates a lookup error.
func NewNotFoundError(code, message string) *UIError {
	return &UIError{Type: ErrorTypeNotFound, Code: code, Message: message}
}

// NewRenderError creates a rendering error.
func NewRenderError(message string, cause error) *UIError {
	return &UIError{Type: ErrorTypeRender, Code: ErrCodeRender, Message: message, Cause: cause}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *UIError {
	return &UIError{Type: ErrorTypeIO, Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *UIError {
	return &UIError{Type: ErrorTypeConfig, Code: code, Message: message}
}

// NewSecurityError creates a security error.
func NewSecurityError(code, message string) *UIError {
	return &UIError{Type: ErrorTypeSecurity, Code: code, Message: message}
}

// ErrComponentNotFound creates a component not found error.
func ErrComponentNotFound(name string) *UIError {
	return NewNotFoundError(ErrCodeComponentNotFound, "component not found").WithComponent(name)
}

// ErrExampleNotFound creates an example not found error.
func ErrExampleNotFound(component, example string) *UIError {
	return NewNotFoundError(ErrCodeExampleNotFound, "example not found").
		WithComponent(component).
		WithExample(example)
}

// ErrInvalidProps wraps a props decoding failure.
func ErrInvalidProps(component string, cause error) *UIError {
	e := NewValidationError(ErrCodeInvalidProps, "invalid props").WithComponent(component)
	e.Cause = cause
	return e
}

// ErrPathTraversal creates a path traversal security error.
func ErrPathTraversal(path string) *UIError {
	return NewSecurityError(ErrCodePathTraversal, "path traversal attempt: "+path)
}

// ErrInvalidOrigin creates an invalid origin security error.
func ErrInvalidOrigin(origin string) *UIError {
	return NewSecurityError(ErrCodeInvalidOrigin, "invalid origin: "+origin)
}

// IsType reports whether err is a UIError of the given type.
func IsType(err error, t ErrorType) bool {
	var ue *UIError
	if errors.As(err, &ue) {
		return ue.Type == t
	}
	return false
}

// IsNotFound reports whether err is a lookup failure.
func IsNotFound(err error) bool { return IsType(err, ErrorTypeNotFound) }

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return IsType(err, ErrorTypeValidation) }
