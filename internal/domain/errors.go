package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInput indicates the input document could not be read or decoded.
	ErrInput = errors.New("input error")

	// ErrConfig indicates an invalid configuration value.
	ErrConfig = errors.New("configuration error")
)

// InputError represents a failure to load the input document.
type InputError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "input error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

// ConfigError represents an invalid option value.
type ConfigError struct {
	// Option is the name of the offending option
	Option string
	// Value is the rejected value
	Value string
	// Allowed lists the accepted values
	Allowed []string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("configuration error: unsupported %s %q", e.Option, e.Value)
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (supported: %s)", strings.Join(e.Allowed, ", "))
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
