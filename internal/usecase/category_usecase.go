package usecase

import (
	"context"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, name string) (*domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, name string, upd domain.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(ctx context.Context, name string) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.categoryRepo.ListCategories(ctx)
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		uc.log.Warnf("Category '%s' not found", name)
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, inserted, err := uc.categoryRepo.CreateCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, domain.ErrCategoryExists
	}
	return category, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, name string, upd domain.CategoryUpdate) (*domain.Category, error) {
	if upd.IsEmpty() {
		uc.log.Warnf("Update for category '%s' carries no fields", name)
		return nil, domain.ErrNoFieldsToUpdate
	}

	category, err := uc.categoryRepo.UpdateCategory(ctx, name, upd)
	if err != nil {
		return nil, err
	}
	if category == nil {
		uc.log.Warnf("Category '%s' not found for update", name)
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, name string) error {
	affected, err := uc.categoryRepo.DeleteCategory(ctx, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		uc.log.Warnf("Category '%s' not found for deletion", name)
		return domain.ErrNotFound
	}
	return nil
}
