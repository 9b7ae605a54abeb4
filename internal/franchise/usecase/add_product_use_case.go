package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
)

type AddProductToBranchUseCase struct {
	repo   FranchiseRepository
	newID  IDGenerator
	logger *zap.Logger
}

func NewAddProductToBranchUseCase(repo FranchiseRepository, newID IDGenerator, logger *zap.Logger) *AddProductToBranchUseCase {
	return &AddProductToBranchUseCase{
		repo:   repo,
		newID:  newID,
		logger: logger,
	}
}

func (uc *AddProductToBranchUseCase) AddProduct(ctx context.Context, franchiseID, branchID string, product domain.Product) (*domain.Product, error) {
	uc.logger.Info("add product started",
		zap.String("franchiseId", franchiseID), zap.String("branchId", branchID), zap.String("name", product.Name))

	franchise, err := loadFranchise(ctx, uc.repo, franchiseID)
	if err != nil {
		return nil, err
	}

	branch, err := findBranchOrFail(franchise, branchID, uc.logger)
	if err != nil {
		return nil, err
	}

	if err := ensureProductNameAvailable(branch, product.Name, "", uc.logger); err != nil {
		return nil, err
	}

	product.ID = uc.newID()
	branch.AddProduct(product)

	if _, err := uc.repo.Save(ctx, franchise); err != nil {
		uc.logger.Error("add product failed", zap.String("branchId", branchID), zap.Error(err))
		return nil, translateSaveError(err, franchise)
	}

	uc.logger.Info("add product completed", zap.String("branchId", branchID), zap.String("productId", product.ID))
	return &product, nil
}
