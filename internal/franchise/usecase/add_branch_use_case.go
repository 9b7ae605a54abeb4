package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
)

type AddBranchToFranchiseUseCase struct {
	repo   FranchiseRepository
	newID  IDGenerator
	logger *zap.Logger
}

func NewAddBranchToFranchiseUseCase(repo FranchiseRepository, newID IDGenerator, logger *zap.Logger) *AddBranchToFranchiseUseCase {
	return &AddBranchToFranchiseUseCase{
		repo:   repo,
		newID:  newID,
		logger: logger,
	}
}

func (uc *AddBranchToFranchiseUseCase) AddBranch(ctx context.Context, franchiseID string, branch domain.Branch) (*domain.Branch, error) {
	name := domain.NormalizeBranchName(branch.Name)
	uc.logger.Info("add branch started", zap.String("franchiseId", franchiseID), zap.String("name", name))

	franchise, err := loadFranchise(ctx, uc.repo, franchiseID)
	if err != nil {
		return nil, err
	}

	if err := ensureBranchNameAvailable(franchise, name, "", uc.logger); err != nil {
		return nil, err
	}

	products, err := prepareProducts(branch.Products, name, uc.newID)
	if err != nil {
		return nil, err
	}

	added := domain.NewBranch(uc.newID(), name, products)
	franchise.AddBranch(added)

	saved, err := uc.repo.Save(ctx, franchise)
	if err != nil {
		uc.logger.Error("add branch failed", zap.String("franchiseId", franchiseID), zap.Error(err))
		return nil, translateSaveError(err, franchise)
	}

	uc.logger.Info("add branch completed", zap.String("franchiseId", franchiseID), zap.String("branchId", added.ID))

	if b := findSavedBranch(saved, added.ID); b != nil {
		return b, nil
	}
	return &added, nil
}
