package usecase

import (
	"context"
	"io"
	"testing"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockCategoryRepo struct {
	categories []domain.Category
	category   *domain.Category
	inserted   bool
	affected   int64
	err        error

	lastName   string
	lastUpdate domain.CategoryUpdate
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.categories, m.err
}

func (m *mockCategoryRepo) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	m.lastName = name
	return m.category, m.err
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, name string) (*domain.Category, bool, error) {
	m.lastName = name
	return m.category, m.inserted, m.err
}

func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, name string, upd domain.CategoryUpdate) (*domain.Category, error) {
	m.lastName = name
	m.lastUpdate = upd
	return m.category, m.err
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, name string) (int64, error) {
	m.lastName = name
	return m.affected, m.err
}

func TestGetCategoryNotFound(t *testing.T) {
	repo := &mockCategoryRepo{}
	uc := NewCategoryUseCase(repo, testLogger())

	_, err := uc.GetCategory(context.Background(), "Nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCategoryFound(t *testing.T) {
	repo := &mockCategoryRepo{category: &domain.Category{Name: "Books"}}
	uc := NewCategoryUseCase(repo, testLogger())

	got, err := uc.GetCategory(context.Background(), "Books")
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Name)
}

func TestCreateCategoryConflict(t *testing.T) {
	repo := &mockCategoryRepo{inserted: false}
	uc := NewCategoryUseCase(repo, testLogger())

	_, err := uc.CreateCategory(context.Background(), "Books")
	assert.ErrorIs(t, err, domain.ErrCategoryExists)
}

func TestCreateCategorySuccess(t *testing.T) {
	repo := &mockCategoryRepo{category: &domain.Category{Name: "Books"}, inserted: true}
	uc := NewCategoryUseCase(repo, testLogger())

	created, err := uc.CreateCategory(context.Background(), "Books")
	require.NoError(t, err)
	assert.Equal(t, "Books", created.Name)
	assert.Equal(t, "Books", repo.lastName)
}

func TestUpdateCategoryEmptyUpdate(t *testing.T) {
	repo := &mockCategoryRepo{}
	uc := NewCategoryUseCase(repo, testLogger())

	_, err := uc.UpdateCategory(context.Background(), "Books", domain.CategoryUpdate{})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
	assert.Empty(t, repo.lastName, "repository must not be touched")
}

func TestUpdateCategoryNotFound(t *testing.T) {
	repo := &mockCategoryRepo{}
	uc := NewCategoryUseCase(repo, testLogger())

	name := "Literature"
	_, err := uc.UpdateCategory(context.Background(), "Books", domain.CategoryUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCategoryPassesStorageErrorThrough(t *testing.T) {
	storageErr := domain.NewStorageError(domain.FailureUniqueness, assert.AnError)
	repo := &mockCategoryRepo{err: storageErr}
	uc := NewCategoryUseCase(repo, testLogger())

	name := "Music"
	_, err := uc.UpdateCategory(context.Background(), "Books", domain.CategoryUpdate{Name: &name})
	assert.Equal(t, domain.FailureUniqueness, domain.FailureOf(err))
}

func TestDeleteCategoryNotFound(t *testing.T) {
	repo := &mockCategoryRepo{affected: 0}
	uc := NewCategoryUseCase(repo, testLogger())

	err := uc.DeleteCategory(context.Background(), "Nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategorySuccess(t *testing.T) {
	repo := &mockCategoryRepo{affected: 1}
	uc := NewCategoryUseCase(repo, testLogger())

	assert.NoError(t, uc.DeleteCategory(context.Background(), "Books"))
}
