package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
)

type UpdateBranchNameUseCase struct {
	repo   FranchiseRepository
	logger *zap.Logger
}

func NewUpdateBranchNameUseCase(repo FranchiseRepository, logger *zap.Logger) *UpdateBranchNameUseCase {
	return &UpdateBranchNameUseCase{repo: repo, logger: logger}
}

// UpdateName renames a branch. Renaming a branch to its current name is allowed.
func (uc *UpdateBranchNameUseCase) UpdateName(ctx context.Context, franchiseID, branchID, name string) (*domain.Branch, error) {
	name = domain.NormalizeBranchName(name)
	uc.logger.Info("update branch name started",
		zap.String("franchiseId", franchiseID), zap.String("branchId", branchID), zap.String("name", name))

	franchise, err := loadFranchise(ctx, uc.repo, franchiseID)
	if err != nil {
		return nil, err
	}

	branch, err := findBranchOrFail(franchise, branchID, uc.logger)
	if err != nil {
		return nil, err
	}

	if err := ensureBranchNameAvailable(franchise, name, branch.ID, uc.logger); err != nil {
		return nil, err
	}

	branch.Name = name

	saved, err := uc.repo.Save(ctx, franchise)
	if err != nil {
		uc.logger.Error("update branch name failed", zap.String("branchId", branchID), zap.Error(err))
		return nil, translateSaveError(err, franchise)
	}

	uc.logger.Info("update branch name completed", zap.String("branchId", branchID))

	if b := findSavedBranch(saved, branchID); b != nil {
		return b, nil
	}
	return branch, nil
}
