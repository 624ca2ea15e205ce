package domain

import "context"

// Category groups products. Its name is the primary key: renames rewrite the
// key and cascade to every referencing product.
type Category struct {
	Name string `json:"name"`
}

// CategoryUpdate is the set of fields a PATCH may change. Nil means "leave
// unchanged".
type CategoryUpdate struct {
	Name *string
}

func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)

	// GetCategory returns (nil, nil) when no category has the given name.
	GetCategory(ctx context.Context, name string) (*Category, error)

	// CreateCategory inserts the category. A name collision is not an error:
	// it reports inserted == false and the caller decides how to surface it.
	CreateCategory(ctx context.Context, name string) (created *Category, inserted bool, err error)

	// UpdateCategory renames by primary key and returns (nil, nil) when the
	// category does not exist. Rename collisions surface as a uniqueness
	// failure; renames cascade to referencing products.
	UpdateCategory(ctx context.Context, name string, upd CategoryUpdate) (*Category, error)

	// DeleteCategory removes the category and, by cascade, every product
	// referencing it. It reports the number of category rows deleted.
	DeleteCategory(ctx context.Context, name string) (int64, error)
}
