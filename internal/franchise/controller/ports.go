package controller

import (
	"context"

	"franchises/internal/domain"
)

type CreateFranchiseUseCase interface {
	Create(ctx context.Context, franchise domain.Franchise) (*domain.Franchise, error)
}

type GetFranchiseUseCase interface {
	Get(ctx context.Context, franchiseID string) (*domain.Franchise, error)
}

type UpdateFranchiseNameUseCase interface {
	UpdateName(ctx context.Context, franchiseID, name string) (*domain.Franchise, error)
}

type GetMaxStockUseCase interface {
	GetMaxStock(ctx context.Context, franchiseID string) (*domain.Franchise, error)
}

type AddBranchUseCase interface {
	AddBranch(ctx context.Context, franchiseID string, branch domain.Branch) (*domain.Branch, error)
}

type UpdateBranchNameUseCase interface {
	UpdateName(ctx context.Context, franchiseID, branchID, name string) (*domain.Branch, error)
}

type AddProductUseCase interface {
	AddProduct(ctx context.Context, franchiseID, branchID string, product domain.Product) (*domain.Product, error)
}

type UpdateProductUseCase interface {
	UpdateProduct(ctx context.Context, franchiseID, branchID, productID string, patch domain.ProductPatch) (*domain.Product, error)
}

type DeleteProductUseCase interface {
	DeleteProduct(ctx context.Context, franchiseID, branchID, productID string) error
}
