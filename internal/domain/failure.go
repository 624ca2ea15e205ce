package domain

import (
	"errors"
	"fmt"
)

// FailureCategory classifies a storage-engine failure. The repository layer
// populates it once, from engine result codes; upper layers never inspect
// error message text.
type FailureCategory int

const (
	FailureUnknown FailureCategory = iota
	FailureUniqueness
	FailureForeignKey
	FailureCheckConstraint
	FailureBusy
	FailureFull
	FailureReadOnly
	FailureRange
	FailureMismatch
	FailureTooBig
	FailurePermission
)

func (c FailureCategory) String() string {
	switch c {
	case FailureUniqueness:
		return "uniqueness"
	case FailureForeignKey:
		return "foreign_key"
	case FailureCheckConstraint:
		return "check_constraint"
	case FailureBusy:
		return "busy"
	case FailureFull:
		return "full"
	case FailureReadOnly:
		return "readonly"
	case FailureRange:
		return "range"
	case FailureMismatch:
		return "mismatch"
	case FailureTooBig:
		return "too_large"
	case FailurePermission:
		return "permission"
	default:
		return "unknown"
	}
}

// StorageError wraps an engine error together with its failure category.
type StorageError struct {
	Category FailureCategory
	Err      error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure (%s): %v", e.Category, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the given category.
func NewStorageError(category FailureCategory, err error) *StorageError {
	return &StorageError{Category: category, Err: err}
}

// FailureOf extracts the failure category from an error chain, defaulting to
// FailureUnknown for errors that did not originate in the storage layer.
func FailureOf(err error) FailureCategory {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Category
	}
	return FailureUnknown
}
