package domain

import "context"

// Product is a sellable item. The id is generated server-side (UUID v4) and
// CategoryName must reference an existing category at all times.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	CategoryName string `json:"categoryName"`
}

// NewProduct carries the caller-supplied fields of a product to create; the
// id is generated by the repository.
type NewProduct struct {
	Name         string
	Price        int64
	CategoryName string
}

// ProductUpdate is the set of fields a PATCH may change. Nil means "leave
// unchanged".
type ProductUpdate struct {
	Name         *string
	Price        *int64
	CategoryName *string
}

func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.CategoryName == nil
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)

	// GetProduct returns (nil, nil) when no product has the given id.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// CreateProduct generates a fresh unique id and inserts the product.
	// A missing category surfaces as a ForeignKey failure, an invalid price
	// as a CheckConstraint failure.
	CreateProduct(ctx context.Context, fields NewProduct) (*Product, error)

	// UpdateProduct partially updates by primary key and returns (nil, nil)
	// when the product does not exist.
	UpdateProduct(ctx context.Context, id string, upd ProductUpdate) (*Product, error)

	// DeleteProduct removes the product, reporting rows affected.
	DeleteProduct(ctx context.Context, id string) (int64, error)

	// UpdateProductsCategory moves the given products into categoryName with
	// a single statement. The count may be lower than len(ids) when some ids
	// do not exist; that is not an error. A missing target category rejects
	// the whole statement with a ForeignKey failure.
	UpdateProductsCategory(ctx context.Context, ids []string, categoryName string) (int64, error)

	// DeleteProducts removes all matching ids with a single statement;
	// non-matching ids are silently ignored.
	DeleteProducts(ctx context.Context, ids []string) (int64, error)
}
