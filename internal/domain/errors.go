package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
	ErrDuplicate  = errors.New("resource already exists")
	ErrCapacity   = errors.New("club capacity exceeded")
)

type ValidationKind string

const (
	KindEmptyValue ValidationKind = "EMPTY_VALUE"
	KindTooShort   ValidationKind = "TOO_SHORT"
)

// ValidationError reports malformed value object input. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Field string
	Kind  ValidationKind
	Min   int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindTooShort:
		return fmt.Sprintf("%s must be at least %d characters", e.Field, e.Min)
	case KindEmptyValue:
		return fmt.Sprintf("%s cannot be empty", e.Field)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func emptyValue(field string) error {
	return &ValidationError{Field: field, Kind: KindEmptyValue}
}

func tooShort(field string, minLen int) error {
	return &ValidationError{Field: field, Kind: KindTooShort, Min: minLen}
}
