package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeNotFound represents missing-entity errors
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeIntegrity represents referential-integrity violations
	ErrorTypeIntegrity ErrorType = "integrity"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// Entity kinds used in error messages
const (
	KindUser    = "User"
	KindPost    = "Post"
	KindComment = "Comment"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// NotFoundError is returned when a lookup by identifier matches no node.
// Absence is an explicit result, not control flow.
type NotFoundError struct {
	*BaseError
	Kind string
	ID   string
}

func NewNotFound(kind, id string) *NotFoundError {
	return &NotFoundError{
		BaseError: NewBaseError(ErrorTypeNotFound, fmt.Sprintf("%s not found: %s", kind, id), nil),
		Kind:      kind,
		ID:        id,
	}
}

// IntegrityError is returned when a save references a missing parent
// (author or post). Save must fail before any write occurs.
type IntegrityError struct {
	*BaseError
	Kind string // kind of the missing parent
	ID   string // id of the missing parent
}

func NewIntegrityViolation(kind, id string) *IntegrityError {
	return &IntegrityError{
		BaseError: NewBaseError(ErrorTypeIntegrity, fmt.Sprintf("missing %s: %s", kind, id), nil),
		Kind:      kind,
		ID:        id,
	}
}

// ErrStoreUnavailable is returned when the graph store handle is nil or the
// connection could not be established
var ErrStoreUnavailable = NewBaseError(ErrorTypeGraph, "graph store not available", nil)

// QueryError is returned when a graph query fails to execute
type QueryError struct {
	*BaseError
	Query string
}

func NewQueryFailed(query string, err error) *QueryError {
	return &QueryError{
		BaseError: NewBaseError(ErrorTypeGraph, "query failed", err),
		Query:     query,
	}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsIntegrity reports whether err is (or wraps) an IntegrityError
func IsIntegrity(err error) bool {
	var iv *IntegrityError
	return errors.As(err, &iv)
}

// IsStoreUnavailable reports whether err is (or wraps) ErrStoreUnavailable
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
