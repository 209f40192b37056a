package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is matched by every NotFound error via errors.Is
var ErrNotFound = errors.New("record not found")

// Error types
const (
	ErrorTypeNotFound         = "not_found"
	ErrorTypeValidationFailed = "validation_failed"
	ErrorTypeQueryFailed      = "query_failed"
	ErrorTypeCommitFailed     = "commit_failed"
)

// NotFoundError represents a lookup of an entity id that does not exist
type NotFoundError struct {
	Resource string
	ID       int64
	Message  string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates an error for a missing entity. The message reads
// "{Resource} with ID {id} not found."
func NewNotFoundError(resource string, id int64) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
		Message:  fmt.Sprintf("%s with ID %d not found.", resource, id),
	}
}

// ValidationError represents errors in request validation. Fields maps a
// field name to its first failing message.
type ValidationError struct {
	Fields  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation error: %s", e.Message)
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("validation error: %s (%s)", e.Message, strings.Join(parts, "; "))
}

// NewValidationError creates a new validation error
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: message,
	}
}

// StorageError represents errors related to storage operations
type StorageError struct {
	Type      string
	Operation string
	Resource  string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error [%s] during %s on %s (caused by: %v)", e.Type, e.Operation, e.Resource, e.Cause)
	}
	return fmt.Sprintf("storage error [%s] during %s on %s", e.Type, e.Operation, e.Resource)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageQueryError creates an error for storage query failures
func NewStorageQueryError(operation, resource string, cause error) *StorageError {
	return &StorageError{
		Type:      ErrorTypeQueryFailed,
		Operation: operation,
		Resource:  resource,
		Cause:     cause,
	}
}

// NewStorageCommitError creates an error for a unit of work that failed to commit
func NewStorageCommitError(operation, resource string, cause error) *StorageError {
	return &StorageError{
		Type:      ErrorTypeCommitFailed,
		Operation: operation,
		Resource:  resource,
		Cause:     cause,
	}
}

// IsNotFound reports whether any error in err's chain is a NotFound error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether any error in err's chain is a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
