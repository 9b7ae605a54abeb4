package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
)

type GetMaxStockByBranchUseCase struct {
	repo   FranchiseRepository
	logger *zap.Logger
}

func NewGetMaxStockByBranchUseCase(repo FranchiseRepository, logger *zap.Logger) *GetMaxStockByBranchUseCase {
	return &GetMaxStockByBranchUseCase{repo: repo, logger: logger}
}

// GetMaxStock is read only: it never writes back to the store.
func (uc *GetMaxStockByBranchUseCase) GetMaxStock(ctx context.Context, franchiseID string) (*domain.Franchise, error) {
	uc.logger.Info("max stock by branch started", zap.String("franchiseId", franchiseID))

	franchise, err := loadFranchise(ctx, uc.repo, franchiseID)
	if err != nil {
		return nil, err
	}

	view := franchise.MaxStockView()
	return &view, nil
}
