package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrUnknownPreset matches any UnknownPresetError via errors.Is.
	ErrUnknownPreset = stdErrors.New("unknown preset")
	// ErrInvalidColorsInput matches any InvalidColorsInputError via errors.Is.
	ErrInvalidColorsInput = stdErrors.New("invalid colors input")
)

// UnknownPresetError reports a preset name that the registry does not know.
type UnknownPresetError struct {
	Name string
}

// NewUnknownPresetError constructs an UnknownPresetError.
func NewUnknownPresetError(name string) error {
	return &UnknownPresetError{Name: name}
}

func (e *UnknownPresetError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown preset %q", e.Name)
}

// Is lets errors.Is match the ErrUnknownPreset sentinel.
func (e *UnknownPresetError) Is(target error) bool {
	return target == ErrUnknownPreset
}

// InvalidColorsInputError reports a colors value that is none of the accepted shapes.
type InvalidColorsInputError struct {
	Reason string
	Err    error
}

// NewInvalidColorsInputError constructs an InvalidColorsInputError.
func NewInvalidColorsInputError(reason string, err error) error {
	return &InvalidColorsInputError{Reason: reason, Err: err}
}

func (e *InvalidColorsInputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid colors input: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid colors input: %s", e.Reason)
}

// Is lets errors.Is match the ErrInvalidColorsInput sentinel.
func (e *InvalidColorsInputError) Is(target error) bool {
	return target == ErrInvalidColorsInput
}

// Unwrap exposes the underlying error.
func (e *InvalidColorsInputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
