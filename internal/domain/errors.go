package domain

import "errors"

// Application-level outcomes the use case layer reports on top of the storage
// failure categories. The delivery layer owns their HTTP representation.
var (
	// ErrNotFound signals that the addressed category or product is absent.
	ErrNotFound = errors.New("not found")

	// ErrCategoryExists signals a create that was a no-op because the name is
	// already taken.
	ErrCategoryExists = errors.New("category already exists")

	// ErrNoFieldsToUpdate signals a partial update whose validated field set
	// came out empty.
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
)
