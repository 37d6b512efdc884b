package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDecode matches every decode failure produced by this module.
	ErrDecode = errors.New("decode error")

	// ErrMissingDiscriminator indicates the discriminator key was absent or not a string.
	ErrMissingDiscriminator = errors.New("missing discriminator")

	// ErrUnknownVariant indicates the discriminator value is not registered.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrInvalidField indicates a required field was missing or a field was malformed.
	ErrInvalidField = errors.New("missing or invalid field")

	// ErrMalformedFlow indicates an OAuth flow object was missing a field or malformed.
	ErrMalformedFlow = errors.New("malformed oauth flow")

	// ErrNotString indicates a JSON value that had to be a string was not.
	ErrNotString = errors.New("not a JSON string")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// MissingDiscriminatorError reports an object without a usable discriminator.
type MissingDiscriminatorError struct {
	// Key is the discriminator key that was looked up (usually "type")
	Key string
	// Present is true when the key existed but did not hold a string
	Present bool
}

// Error returns a human-readable error message.
func (e *MissingDiscriminatorError) Error() string {
	if e.Present {
		return fmt.Sprintf("missing discriminator: %q must be a string", e.Key)
	}
	return fmt.Sprintf("missing discriminator: %q is required", e.Key)
}

// Is reports whether target matches this error type.
func (e *MissingDiscriminatorError) Is(target error) bool {
	return target == ErrMissingDiscriminator || target == ErrDecode
}

// UnknownVariantError reports a discriminator value that selects no variant.
type UnknownVariantError struct {
	// Key is the discriminator key
	Key string
	// Value is the unrecognized discriminator value
	Value string
	// Known lists the registered values, in registration order
	Known []string
}

// Error returns a human-readable error message.
func (e *UnknownVariantError) Error() string {
	msg := fmt.Sprintf("unknown variant: %s %q", e.Key, e.Value)
	if len(e.Known) > 0 {
		msg += " (expected one of: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant || target == ErrDecode
}

// FieldError reports a required field that is missing, or a field whose
// value does not have the shape the matched variant expects.
type FieldError struct {
	// Variant is the discriminator value of the matched variant
	Variant string
	// Field is the JSON key of the offending field
	Field string
	// Missing is true when the field was absent rather than malformed
	Missing bool
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FieldError) Error() string {
	msg := "invalid field"
	if e.Missing {
		msg = "missing field"
	}
	if e.Variant != "" {
		msg += " " + e.Variant + "." + e.Field
	} else if e.Field != "" {
		msg += " " + e.Field
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
func (e *FieldError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField || target == ErrDecode
}

// FlowError reports a malformed OAuth flow object inside a flow set.
type FlowError struct {
	// Flow is the flow key: implicit, password, clientCredentials or authorizationCode
	Flow string
	// Field is the offending field inside the flow (empty when the flow itself is malformed)
	Field string
	// Missing is true when a required field was absent
	Missing bool
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FlowError) Error() string {
	msg := "malformed flow " + e.Flow
	if e.Field != "" {
		if e.Missing {
			msg += ": missing field " + e.Field
		} else {
			msg += ": invalid field " + e.Field
		}
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
func (e *FlowError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FlowError) Is(target error) bool {
	return target == ErrMalformedFlow || target == ErrDecode
}

// NotStringError reports a decode target that required a JSON string.
type NotStringError struct {
	// Target names the Go type being decoded (e.g., "urltemplate.Template")
	Target string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *NotStringError) Error() string {
	msg := "not a JSON string"
	if e.Target != "" {
		msg += ": cannot decode " + e.Target
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *NotStringError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *NotStringError) Is(target error) bool {
	return target == ErrNotString || target == ErrDecode
}

// ParseError represents a failure to parse JSON or YAML input.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
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
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
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
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
