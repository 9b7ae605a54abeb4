package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
	apperrors "franchises/internal/errors"
)

type UpdateFranchiseNameUseCase struct {
	repo   FranchiseRepository
	logger *zap.Logger
}

func NewUpdateFranchiseNameUseCase(repo FranchiseRepository, logger *zap.Logger) *UpdateFranchiseNameUseCase {
	return &UpdateFranchiseNameUseCase{repo: repo, logger: logger}
}

func (uc *UpdateFranchiseNameUseCase) UpdateName(ctx context.Context, franchiseID, name string) (*domain.Franchise, error) {
	uc.logger.Info("update franchise name started", zap.String("franchiseId", franchiseID), zap.String("name", name))

	franchise, err := loadFranchise(ctx, uc.repo, franchiseID)
	if err != nil {
		return nil, err
	}

	if franchise.Name == name {
		return franchise, nil
	}

	other, err := uc.repo.FindByName(ctx, name)
	switch {
	case err == nil && other != nil && other.ID != franchise.ID:
		uc.logger.Warn("franchise name already taken", zap.String("name", name))
		return nil, apperrors.NewDuplicateError(apperrors.EntityFranchise, name, "")
	case err != nil:
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			return nil, err
		}
	}

	franchise.Name = name
	saved, err := uc.repo.Save(ctx, franchise)
	if err != nil {
		err = translateSaveError(err, franchise)
		uc.logger.Error("update franchise name failed", zap.String("franchiseId", franchiseID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("update franchise name completed", zap.String("franchiseId", franchiseID))
	return savedOr(saved, franchise), nil
}
