package usecase

import (
	"context"

	"go.uber.org/zap"

	apperrors "franchises/internal/errors"
)

type DeleteProductFromBranchUseCase struct {
	repo   FranchiseRepository
	logger *zap.Logger
}

func NewDeleteProductFromBranchUseCase(repo FranchiseRepository, logger *zap.Logger) *DeleteProductFromBranchUseCase {
	return &DeleteProductFromBranchUseCase{repo: repo, logger: logger}
}

func (uc *DeleteProductFromBranchUseCase) DeleteProduct(ctx context.Context, franchiseID, branchID, productID string) error {
	uc.logger.Info("delete product started",
		zap.String("franchiseId", franchiseID), zap.String("branchId", branchID), zap.String("productId", productID))

	franchise, err := loadFranchise(ctx, uc.repo, franchiseID)
	if err != nil {
		return err
	}

	branch, err := findBranchOrFail(franchise, branchID, uc.logger)
	if err != nil {
		return err
	}

	if !branch.RemoveProduct(productID) {
		uc.logger.Warn("product does not exist in branch", zap.String("productId", productID), zap.String("branch", branch.Name))
		return apperrors.NewNotFoundError(apperrors.EntityProduct, productID)
	}

	if _, err := uc.repo.Save(ctx, franchise); err != nil {
		uc.logger.Error("delete product failed", zap.String("productId", productID), zap.Error(err))
		return translateSaveError(err, franchise)
	}

	uc.logger.Info("delete product completed", zap.String("productId", productID))
	return nil
}
