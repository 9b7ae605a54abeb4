package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
)

type CreateFranchiseUseCase struct {
	repo   FranchiseRepository
	newID  IDGenerator
	logger *zap.Logger
}

func NewCreateFranchiseUseCase(repo FranchiseRepository, newID IDGenerator, logger *zap.Logger) *CreateFranchiseUseCase {
	return &CreateFranchiseUseCase{
		repo:   repo,
		newID:  newID,
		logger: logger,
	}
}

// Create stores a new franchise. A client supplied id is kept; otherwise one is
// generated. Name uniqueness is enforced by the store.
func (uc *CreateFranchiseUseCase) Create(ctx context.Context, franchise domain.Franchise) (*domain.Franchise, error) {
	uc.logger.Info("create franchise started", zap.String("name", franchise.Name), zap.Int("branchCount", len(franchise.Branches)))

	if franchise.ID == "" {
		franchise.ID = uc.newID()
	}
	franchise.Version = 0

	branches, err := prepareBranches(franchise.Branches, franchise.Name, uc.newID)
	if err != nil {
		uc.logger.Warn("create franchise rejected", zap.String("name", franchise.Name), zap.Error(err))
		return nil, err
	}
	franchise.Branches = branches

	saved, err := uc.repo.Save(ctx, &franchise)
	if err != nil {
		err = translateSaveError(err, &franchise)
		uc.logger.Error("create franchise failed", zap.String("name", franchise.Name), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("create franchise completed", zap.String("franchiseId", saved.ID))
	return savedOr(saved, &franchise), nil
}
