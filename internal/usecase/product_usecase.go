package usecase

import (
	"context"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, fields domain.NewProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// RecategorizeProducts moves every existing product of the id set into
	// categoryName atomically; the returned count may be lower than len(ids).
	RecategorizeProducts(ctx context.Context, ids []string, categoryName string) (int64, error)

	// DeleteProducts removes every existing product of the id set; missing
	// ids are ignored.
	DeleteProducts(ctx context.Context, ids []string) (int64, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return uc.productRepo.ListProducts(ctx)
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := uc.productRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		uc.log.Warnf("Product %s not found", id)
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, fields domain.NewProduct) (*domain.Product, error) {
	return uc.productRepo.CreateProduct(ctx, fields)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	if upd.IsEmpty() {
		uc.log.Warnf("Update for product %s carries no fields", id)
		return nil, domain.ErrNoFieldsToUpdate
	}

	product, err := uc.productRepo.UpdateProduct(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if product == nil {
		uc.log.Warnf("Product %s not found for update", id)
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	affected, err := uc.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		uc.log.Warnf("Product %s not found for deletion", id)
		return domain.ErrNotFound
	}
	return nil
}

func (uc *productUseCase) RecategorizeProducts(ctx context.Context, ids []string, categoryName string) (int64, error) {
	return uc.productRepo.UpdateProductsCategory(ctx, ids, categoryName)
}

func (uc *productUseCase) DeleteProducts(ctx context.Context, ids []string) (int64, error) {
	return uc.productRepo.DeleteProducts(ctx, ids)
}
