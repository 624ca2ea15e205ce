package repository

import (
	"errors"
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/assert"
	sqlite3 "modernc.org/sqlite/lib"
)

func TestCategorize(t *testing.T) {
	testCases := []struct {
		name     string
		code     int
		expected domain.FailureCategory
	}{
		{"unique constraint", sqlite3.SQLITE_CONSTRAINT_UNIQUE, domain.FailureUniqueness},
		{"primary key constraint", sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, domain.FailureUniqueness},
		{"foreign key constraint", sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, domain.FailureForeignKey},
		{"check constraint", sqlite3.SQLITE_CONSTRAINT_CHECK, domain.FailureCheckConstraint},
		{"not null constraint", sqlite3.SQLITE_CONSTRAINT_NOTNULL, domain.FailureCheckConstraint},
		{"bare constraint code", sqlite3.SQLITE_CONSTRAINT, domain.FailureCheckConstraint},
		{"busy", sqlite3.SQLITE_BUSY, domain.FailureBusy},
		{"busy snapshot extended", sqlite3.SQLITE_BUSY | (2 << 8), domain.FailureBusy},
		{"locked", sqlite3.SQLITE_LOCKED, domain.FailureBusy},
		{"full", sqlite3.SQLITE_FULL, domain.FailureFull},
		{"readonly", sqlite3.SQLITE_READONLY, domain.FailureReadOnly},
		{"range", sqlite3.SQLITE_RANGE, domain.FailureRange},
		{"mismatch", sqlite3.SQLITE_MISMATCH, domain.FailureMismatch},
		{"toobig", sqlite3.SQLITE_TOOBIG, domain.FailureTooBig},
		{"perm", sqlite3.SQLITE_PERM, domain.FailurePermission},
		{"auth", sqlite3.SQLITE_AUTH, domain.FailurePermission},
		{"cantopen", sqlite3.SQLITE_CANTOPEN, domain.FailurePermission},
		{"io error", sqlite3.SQLITE_IOERR, domain.FailureUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, categorize(tc.code))
		})
	}
}

func TestClassifyNonDriverError(t *testing.T) {
	err := classify(errors.New("something else"))

	var se *domain.StorageError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, domain.FailureUnknown, se.Category)
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify(nil))
}
