// Package validate provides configuration validation utilities for jsontoggle.
//
// This file implements common validation patterns used by the CLI flag
// processing and the release pipeline configuration. All functions leverage
// the go-playground/validator library for standardized validation behavior.
//
// VALIDATION UTILITIES:
//   - Field validation: Arbitrary values against validator tags
//   - String validation: Required field and non-empty string checking
//   - Command validation: Non-empty external command argument vectors
//   - Timeout validation: Positive timeout values for HTTP operations
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for all validation helpers.
var validate = validator.New()

// ValidateField validates individual values against specified validation
// rules using the go-playground/validator library. Provides flexible
// validation for single fields without requiring struct definitions.
//
// Supports all built-in validation tags including URLs, numeric ranges,
// string patterns, and required field validation.
//
// Example: ValidateField("https://pypi.org", "required,url")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling across config
// validation.
//
// Ensures required configuration fields like the manifest path and version
// key are properly specified before the release pipeline starts, preventing
// runtime failures from missing essential parameters.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateCommand validates that an external command argument vector names
// at least an executable. Used for the build and publish commands, which the
// release pipeline invokes as subprocesses.
func ValidateCommand(command []string, name string) error {
	if len(command) == 0 {
		return fmt.Errorf("%s command cannot be empty", name)
	}
	if err := ValidateField(command[0], "required"); err != nil {
		return fmt.Errorf("%s command executable cannot be empty", name)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout value in seconds is
// positive (> 0). Prevents timeout configurations that would cause infinite
// waits or immediate failures during package index checks.
func ValidatePositiveTimeout(seconds int, name string) error {
	if seconds <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
