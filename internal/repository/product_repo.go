package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type sqliteProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewSQLiteProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &sqliteProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *sqliteProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price, category_name FROM products`)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, classify(err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.CategoryName); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, classify(err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, classify(err)
	}

	return products, nil
}

func (r *sqliteProductRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product := &domain.Product{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price, category_name FROM products WHERE id = ?`, id,
	).Scan(&product.ID, &product.Name, &product.Price, &product.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.log.Errorf("Failed to get product %s: %v", id, err)
		return nil, classify(err)
	}
	return product, nil
}

func (r *sqliteProductRepository) CreateProduct(ctx context.Context, fields domain.NewProduct) (*domain.Product, error) {
	id := uuid.NewString()

	product := &domain.Product{}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO products (id, name, price, category_name)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, name, price, category_name`,
		id, fields.Name, fields.Price, fields.CategoryName,
	).Scan(&product.ID, &product.Name, &product.Price, &product.CategoryName)
	if err != nil {
		r.log.Errorf("Failed to create product '%s': %v", fields.Name, err)
		return nil, classify(err)
	}

	r.log.Infof("Product created: %s (%s)", product.ID, product.Name)
	return product, nil
}

func (r *sqliteProductRepository) UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	setClauses := []string{}
	args := []any{}
	if upd.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Price != nil {
		setClauses = append(setClauses, "price = ?")
		args = append(args, *upd.Price)
	}
	if upd.CategoryName != nil {
		setClauses = append(setClauses, "category_name = ?")
		args = append(args, *upd.CategoryName)
	}
	if len(setClauses) == 0 {
		return nil, fmt.Errorf("no fields to update for product %s", id)
	}
	args = append(args, id)

	query := "UPDATE products SET " + strings.Join(setClauses, ", ") +
		" WHERE id = ? RETURNING id, name, price, category_name"

	product := &domain.Product{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&product.ID, &product.Name, &product.Price, &product.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.log.Errorf("Failed to update product %s: %v", id, err)
		return nil, classify(err)
	}

	r.log.Infof("Product updated: %s", product.ID)
	return product, nil
}

func (r *sqliteProductRepository) DeleteProduct(ctx context.Context, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		r.log.Errorf("Failed to delete product %s: %v", id, err)
		return 0, classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product %s: %v", id, err)
		return 0, classify(err)
	}

	if affected > 0 {
		r.log.Infof("Product deleted: %s", id)
	}
	return affected, nil
}

func (r *sqliteProductRepository) UpdateProductsCategory(ctx context.Context, ids []string, categoryName string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	args := make([]any, 0, len(ids)+1)
	args = append(args, categoryName)
	for _, id := range ids {
		args = append(args, id)
	}
	query := "UPDATE products SET category_name = ? WHERE id IN (" + placeholders(len(ids)) + ")"

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Errorf("Failed to recategorize %d products into '%s': %v", len(ids), categoryName, err)
		return 0, classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after bulk recategorize: %v", err)
		return 0, classify(err)
	}

	r.log.Infof("Recategorized %d of %d products into '%s'", affected, len(ids), categoryName)
	return affected, nil
}

func (r *sqliteProductRepository) DeleteProducts(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	query := "DELETE FROM products WHERE id IN (" + placeholders(len(ids)) + ")"

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Errorf("Failed to bulk delete %d products: %v", len(ids), err)
		return 0, classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after bulk delete: %v", err)
		return 0, classify(err)
	}

	r.log.Infof("Bulk deleted %d of %d products", affected, len(ids))
	return affected, nil
}

// placeholders renders "?, ?, ?" for an IN clause of n values.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
