// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents a missing or unusable piece of configuration,
// most commonly an absent provider credential.
type ConfigurationError struct {
	Setting string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on '%s': %s", e.Setting, e.Message)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ServiceError represents a failure of the external search provider, either
// an error indicator carried in its response or a failed transport call.
type ServiceError struct {
	Provider   string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("service error from %s: %d - %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("service error from %s: %s", e.Provider, e.Message)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsService checks if an error is a ServiceError
func IsService(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
