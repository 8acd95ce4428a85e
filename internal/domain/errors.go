package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Repositories translate storage-level
// conditions (e.g. sql.ErrNoRows, unique violations) into these.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

// QueryError reports a predicate the storage backend cannot execute: an unknown
// attribute or operator, or an inequality spread over more than one attribute.
type QueryError struct {
	Reason string
}

func (e *QueryError) Error() string {
	return "query: " + e.Reason
}

// NewQueryError builds a QueryError with a formatted reason.
func NewQueryError(format string, args ...any) *QueryError {
	return &QueryError{Reason: fmt.Sprintf(format, args...)}
}
