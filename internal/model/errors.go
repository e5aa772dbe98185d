package model

import "fmt"

// ClassificationError signals that a zero-rated line could not be resolved
// to a VAT category. Silently defaulting would misreport a legally
// zero-rated supply as generically exempt, so this is always surfaced.
type ClassificationError struct {
	Key     string
	Message string
}

func (e *ClassificationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("vat classification: %s", e.Message)
	}
	return fmt.Sprintf("vat classification [%s]: %s", e.Key, e.Message)
}

// NewClassificationError creates a new classification error
func NewClassificationError(key, message string) *ClassificationError {
	return &ClassificationError{
		Key:     key,
		Message: message,
	}
}

// MappingError represents a failure while mapping a relay payload to an
// invoice document, scoped to the field that failed
type MappingError struct {
	Field   string
	Message string
	Cause   error
}

func (e *MappingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mapping %s: %s (%v)", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("mapping %s: %s", e.Field, e.Message)
}

func (e *MappingError) Unwrap() error {
	return e.Cause
}

// NewMappingError creates a new mapping error
func NewMappingError(field, message string, cause error) *MappingError {
	return &MappingError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}
