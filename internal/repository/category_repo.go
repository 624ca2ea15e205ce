package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type sqliteCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewSQLiteCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &sqliteCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *sqliteCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM categories`)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, classify(err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.Name); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, classify(err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, classify(err)
	}

	return categories, nil
}

func (r *sqliteCategoryRepository) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT name FROM categories WHERE name = ?`, name,
	).Scan(&category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.log.Errorf("Failed to get category '%s': %v", name, err)
		return nil, classify(err)
	}
	return category, nil
}

func (r *sqliteCategoryRepository) CreateCategory(ctx context.Context, name string) (*domain.Category, bool, error) {
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES (?) ON CONFLICT(name) DO NOTHING RETURNING name`,
		name,
	).Scan(&category.Name)
	if err != nil {
		// No returned row means the conflict clause swallowed the insert:
		// the name already exists and this is a no-op, not a failure.
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Attempted to create category with duplicate name: %s", name)
			return nil, false, nil
		}
		r.log.Errorf("Failed to create category '%s': %v", name, err)
		return nil, false, classify(err)
	}

	r.log.Infof("Category created: %s", category.Name)
	return category, true, nil
}

func (r *sqliteCategoryRepository) UpdateCategory(ctx context.Context, name string, upd domain.CategoryUpdate) (*domain.Category, error) {
	if upd.IsEmpty() {
		return nil, fmt.Errorf("no fields to update for category '%s'", name)
	}

	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx,
		`UPDATE categories SET name = ? WHERE name = ? RETURNING name`,
		*upd.Name, name,
	).Scan(&category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.log.Errorf("Failed to update category '%s': %v", name, err)
		return nil, classify(err)
	}

	r.log.Infof("Category renamed: %s -> %s", name, category.Name)
	return category, nil
}

func (r *sqliteCategoryRepository) DeleteCategory(ctx context.Context, name string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE name = ?`, name)
	if err != nil {
		r.log.Errorf("Failed to delete category '%s': %v", name, err)
		return 0, classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting category '%s': %v", name, err)
		return 0, classify(err)
	}

	if affected > 0 {
		r.log.Infof("Category deleted: %s (products cascade)", name)
	}
	return affected, nil
}
