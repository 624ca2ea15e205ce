package repository

import (
	"errors"

	"catalog_service/internal/domain"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// classify wraps a driver error in a *domain.StorageError carrying the failure
// category derived from the SQLite result code. This is the only place in the
// repository that looks at engine-specific codes; nothing anywhere parses
// error message text.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return domain.NewStorageError(domain.FailureUnknown, err)
	}
	return domain.NewStorageError(categorize(se.Code()), err)
}

// categorize maps a SQLite (extended) result code to a failure category.
// Constraint sub-codes are distinguished first; everything else switches on
// the primary code in the low byte.
func categorize(code int) domain.FailureCategory {
	switch code & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		switch code {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return domain.FailureUniqueness
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return domain.FailureForeignKey
		default:
			// CHECK, NOT NULL and the remaining constraint flavours all
			// signal data the schema rejects.
			return domain.FailureCheckConstraint
		}
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return domain.FailureBusy
	case sqlite3.SQLITE_FULL:
		return domain.FailureFull
	case sqlite3.SQLITE_READONLY:
		return domain.FailureReadOnly
	case sqlite3.SQLITE_RANGE:
		return domain.FailureRange
	case sqlite3.SQLITE_MISMATCH:
		return domain.FailureMismatch
	case sqlite3.SQLITE_TOOBIG:
		return domain.FailureTooBig
	case sqlite3.SQLITE_PERM, sqlite3.SQLITE_AUTH, sqlite3.SQLITE_CANTOPEN:
		return domain.FailurePermission
	default:
		return domain.FailureUnknown
	}
}
