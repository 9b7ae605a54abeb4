package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
)

type GetFranchiseUseCase struct {
	repo   FranchiseRepository
	logger *zap.Logger
}

func NewGetFranchiseUseCase(repo FranchiseRepository, logger *zap.Logger) *GetFranchiseUseCase {
	return &GetFranchiseUseCase{repo: repo, logger: logger}
}

func (uc *GetFranchiseUseCase) Get(ctx context.Context, franchiseID string) (*domain.Franchise, error) {
	uc.logger.Debug("get franchise", zap.String("franchiseId", franchiseID))
	return loadFranchise(ctx, uc.repo, franchiseID)
}
