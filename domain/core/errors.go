package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Data errors
	ErrInsufficientData = errors.New("insufficient data: need at least 2 samples")
	ErrDuplicateDate    = errors.New("duplicate sample date")
	ErrUnparsableDate   = errors.New("unparsable date")
	ErrBadUnit          = errors.New("unrecognized unit")

	// Computation errors
	ErrInvalidInput = errors.New("invalid input")
)

// Error constructors with context
func NewUnparsableDateError(raw string) error {
	return fmt.Errorf("%w: %q", ErrUnparsableDate, raw)
}

func NewDuplicateDateError(date string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateDate, date)
}

func NewBadUnitError(kind, raw string) error {
	return fmt.Errorf("%w in %s record %q", ErrBadUnit, kind, raw)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrDuplicateDate) ||
		errors.Is(err, ErrUnparsableDate) ||
		errors.Is(err, ErrBadUnit)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
