package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
	apperrors "franchises/internal/errors"
)

type UpdateProductUseCase struct {
	repo   FranchiseRepository
	logger *zap.Logger
}

func NewUpdateProductUseCase(repo FranchiseRepository, logger *zap.Logger) *UpdateProductUseCase {
	return &UpdateProductUseCase{repo: repo, logger: logger}
}

// UpdateProduct applies a partial update. A blank name keeps the current name
// and the stock field is an increment; absent or negative increments are ignored
// and increments past the int range are rejected.
func (uc *UpdateProductUseCase) UpdateProduct(ctx context.Context, franchiseID, branchID, productID string, patch domain.ProductPatch) (*domain.Product, error) {
	uc.logger.Info("update product started",
		zap.String("franchiseId", franchiseID), zap.String("branchId", branchID), zap.String("productId", productID))

	franchise, err := loadFranchise(ctx, uc.repo, franchiseID)
	if err != nil {
		return nil, err
	}

	branch, err := findBranchOrFail(franchise, branchID, uc.logger)
	if err != nil {
		return nil, err
	}

	product, err := findProductOrFail(branch, productID, uc.logger)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != product.Name {
		if err := ensureProductNameAvailable(branch, *patch.Name, product.ID, uc.logger); err != nil {
			return nil, err
		}
	}

	if patch.StockDelta != nil && product.StockOverflows(*patch.StockDelta) {
		uc.logger.Warn("stock increment out of range",
			zap.String("productId", productID), zap.Int("stock", product.Stock), zap.Int("delta", *patch.StockDelta))
		return nil, apperrors.NewValidationError("stock increment out of range", apperrors.ValidationDetail{
			Field:   "stock",
			Message: "stock increment would exceed the maximum stock",
		})
	}

	product.ApplyPatch(patch)
	updated := *product

	if _, err := uc.repo.Save(ctx, franchise); err != nil {
		uc.logger.Error("update product failed", zap.String("productId", productID), zap.Error(err))
		return nil, translateSaveError(err, franchise)
	}

	uc.logger.Info("update product completed", zap.String("productId", productID), zap.Int("stock", updated.Stock))
	return &updated, nil
}
