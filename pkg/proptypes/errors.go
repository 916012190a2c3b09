package proptypes

import (
	"errors"
	"fmt"
)

// Descriptor construction errors. Builders wrap them in *ConfigurationError.
var (
	ErrNilDescriptor = errors.New("nested descriptor is nil")
	ErrEmptyShape    = errors.New("shape must declare at least one key")
	ErrEmptyKey      = errors.New("shape key must not be empty")
	ErrDuplicateKey  = errors.New("shape key is declared twice")
	ErrEmptyValues   = errors.New("oneOf requires at least one value")
	ErrEmptyTypes    = errors.New("oneOfType requires at least one descriptor")
	ErrNilClass      = errors.New("instanceOf requires a non-nil type")
	ErrNilCheck      = errors.New("custom requires a non-nil check function")
	ErrEmptyType     = errors.New("type tag must not be empty")
	ErrNilTypeFunc   = errors.New("validator function is nil")
)

// ErrRegistryFrozen is returned when registering a type on a frozen registry.
var ErrRegistryFrozen = errors.New("registry is frozen")

// ConfigurationError reports a malformed descriptor detected at build time.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Op == "" {
		return "proptypes: " + e.Err.Error()
	}
	return "proptypes: " + e.Op + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErr(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// IsConfigurationError reports whether err is or wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
