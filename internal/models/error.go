package models

import "fmt"

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Store constraint errors
	ErrConstraintViolation = "CONSTRAINT_VIOLATION"
	ErrDeleteRestricted    = "DELETE_RESTRICTED"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// ValidationError is returned when a value breaks a domain rule before it is written.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConstraintKind names the store constraint that rejected a write.
type ConstraintKind string

const (
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintCheck      ConstraintKind = "check"
	// ConstraintRestrict is a delete refused because dependent rows still exist.
	ConstraintRestrict ConstraintKind = "restrict"
)

// ConstraintViolation is returned when a not-null, unique, foreign-key or
// restrict constraint rejects a write. Err holds the store error, if the store
// raised one, and its message is reported as is.
type ConstraintViolation struct {
	Kind   ConstraintKind
	Table  string
	Column string

	// References is the parent table for foreign_key and restrict violations.
	References string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	switch e.Kind {
	case ConstraintNotNull:
		return fmt.Sprintf("NOT NULL constraint failed: %s.%s", e.Table, e.Column)
	case ConstraintForeignKey:
		return fmt.Sprintf("FOREIGN KEY constraint failed: %s.%s references no row in %s", e.Table, e.Column, e.References)
	case ConstraintRestrict:
		return fmt.Sprintf("delete restricted: %s row is referenced by %s.%s", e.References, e.Table, e.Column)
	default:
		return fmt.Sprintf("%s constraint failed: %s.%s", e.Kind, e.Table, e.Column)
	}
}

func (e *ConstraintViolation) Unwrap() error {
	return e.Err
}
