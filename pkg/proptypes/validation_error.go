package proptypes

import (
	"errors"
	"strings"
)

// ValidationError is a single violation found while checking a value.
type ValidationError struct {
	Path              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) String() string { return e.Message }

// ValidationErrors is the ordered result of a validation pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(ve.Messages(), "; ")
}

// Add appends a violation.
func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether any violation was recorded at path.
func (ve ValidationErrors) Has(path string) bool {
	for _, err := range ve {
		if err.Path == path {
			return true
		}
	}
	return false
}

// Get returns the messages recorded at path.
func (ve ValidationErrors) Get(path string) []string {
	var messages []string
	for _, err := range ve {
		if err.Path == path {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Paths returns the distinct paths in encounter order.
func (ve ValidationErrors) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Path] {
			paths = append(paths, err.Path)
			seen[err.Path] = true
		}
	}
	return paths
}

// Messages returns every message in encounter order.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// IsEmpty reports whether no violations were recorded.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Err returns ve as an error, or nil when there are no violations.
func (ve ValidationErrors) Err() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err is or wraps ValidationErrors.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
