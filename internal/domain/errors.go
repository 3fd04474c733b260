package domain

import "fmt"

// ValidationError reports an input outside its documented domain.
// Inputs are rejected, never silently clamped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a named input field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Invalidf builds a ValidationError with a formatted reason.
func Invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// DomainError reports an input combination the calculation cannot proceed
// from, e.g. a retirement age at or before the current age. The individual
// values are in range; together they make the computation impossible.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Impossible builds a DomainError for the named operation.
func Impossible(op, reason string) error {
	return &DomainError{Op: op, Reason: reason}
}
