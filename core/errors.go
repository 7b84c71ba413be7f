package core

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by pipeline nodes. Check them with errors.Is.
var (
	// ErrMissingInput is returned when a required state key is absent or malformed.
	ErrMissingInput = errors.New("missing input")

	// ErrConfig is returned when a node or client is constructed with invalid configuration.
	ErrConfig = errors.New("invalid configuration")

	// ErrExtractionFailed is returned when the language-model fallback cannot produce links.
	ErrExtractionFailed = errors.New("extraction failed")
)

// MissingInputError describes which state key was missing and why.
type MissingInputError struct {
	Key    string
	Reason string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: key %q: %s", e.Key, e.Reason)
}

// Unwrap lets errors.Is match ErrMissingInput.
func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// ConfigError represents an invalid or absent configuration field.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid config: field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid config: field %q with value %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrConfig.
func (e *ConfigError) Unwrap() error {
	return ErrConfig
}
