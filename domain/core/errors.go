package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Parameter validation errors
	ErrInvalidParameter = errors.New("invalid parameter")

	// Mid-square / mid-product digit errors
	ErrDigitMismatch      = errors.New("seed digit count mismatch")
	ErrInsufficientDigits = errors.New("insufficient digits for middle extraction")

	// Distribution construction errors
	ErrInvalidDistribution = errors.New("invalid distribution")

	// Dispatch errors
	ErrUnknownVariant = errors.New("unknown variant")
)

// Error constructors with context
func NewParameterError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, field, reason)
}

func NewDigitMismatchError(field string, value int64, digits int) error {
	return fmt.Errorf("%w: %s = %d must have exactly %d digits", ErrDigitMismatch, field, value, digits)
}

func NewInsufficientDigitsError(value int64, digits int) error {
	return fmt.Errorf("%w: %d has fewer digits than required %d", ErrInsufficientDigits, value, digits)
}

func NewDistributionError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDistribution, reason)
}

func NewUnknownVariantError(kind string, name string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownVariant, kind, name)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrDigitMismatch) ||
		errors.Is(err, ErrInsufficientDigits) ||
		errors.Is(err, ErrInvalidDistribution)
}

func IsUnknownVariantError(err error) bool {
	return errors.Is(err, ErrUnknownVariant)
}
