package usecase

import (
	"context"

	"go.uber.org/zap"

	"franchises/internal/domain"
	apperrors "franchises/internal/errors"
)

func loadFranchise(ctx context.Context, repo FranchiseRepository, franchiseID string) (*domain.Franchise, error) {
	franchise, err := repo.FindByID(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, franchiseID)
	}
	return franchise, nil
}

func findBranchOrFail(franchise *domain.Franchise, branchID string, logger *zap.Logger) (*domain.Branch, error) {
	branch := franchise.FindBranchByID(branchID)
	if branch == nil {
		logger.Warn("branch does not exist in franchise",
			zap.String("branchId", branchID), zap.String("franchise", franchise.Name))
		return nil, apperrors.NewNotFoundError(apperrors.EntityBranch, branchID)
	}
	return branch, nil
}

// findSavedBranch looks the branch up in what the store returned. A store that
// returns no aggregate yields nil so callers fall back to their own copy.
func findSavedBranch(saved *domain.Franchise, branchID string) *domain.Branch {
	if saved == nil {
		return nil
	}
	return saved.FindBranchByID(branchID)
}

// savedOr returns what the store handed back, or fallback when it returned none.
func savedOr(saved, fallback *domain.Franchise) *domain.Franchise {
	if saved == nil {
		return fallback
	}
	return saved
}

func findProductOrFail(branch *domain.Branch, productID string, logger *zap.Logger) (*domain.Product, error) {
	product := branch.FindProductByID(productID)
	if product == nil {
		logger.Warn("product does not exist in branch",
			zap.String("productId", productID), zap.String("branch", branch.Name))
		return nil, apperrors.NewNotFoundError(apperrors.EntityProduct, productID)
	}
	return product, nil
}

// ensureBranchNameAvailable expects a normalized name. exceptID excludes the
// branch being renamed; pass "" when adding.
func ensureBranchNameAvailable(franchise *domain.Franchise, name, exceptID string, logger *zap.Logger) error {
	if franchise.ExistsOtherBranchByName(name, exceptID) {
		logger.Warn("branch name already exists in franchise",
			zap.String("name", name), zap.String("franchise", franchise.Name))
		return apperrors.NewDuplicateError(apperrors.EntityBranch, name, franchise.Name)
	}
	return nil
}

func ensureProductNameAvailable(branch *domain.Branch, name, exceptID string, logger *zap.Logger) error {
	if branch.ExistsOtherProductByName(name, exceptID) {
		logger.Warn("product name already exists in branch",
			zap.String("name", name), zap.String("branch", branch.Name))
		return apperrors.NewDuplicateError(apperrors.EntityProduct, name, branch.Name)
	}
	return nil
}

// translateSaveError turns store-level uniqueness signals into domain errors.
// Anything else is returned untouched.
func translateSaveError(err error, franchise *domain.Franchise) error {
	ue, ok := apperrors.IsUniqueViolationError(err)
	if !ok {
		return err
	}
	if ue.Field == "id" {
		return apperrors.NewConflictError("franchise with id " + franchise.ID + " already exists")
	}
	return apperrors.NewDuplicateError(apperrors.EntityFranchise, franchise.Name, "")
}

// prepareProducts assigns ids to incoming products and rejects repeated names.
func prepareProducts(products []domain.Product, branchName string, newID IDGenerator) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(products))
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.Name]; dup {
			return nil, apperrors.NewDuplicateError(apperrors.EntityProduct, p.Name, branchName)
		}
		seen[p.Name] = struct{}{}
		p.ID = newID()
		out = append(out, p)
	}
	return out, nil
}

// prepareBranches canonicalizes incoming branches for a new franchise.
func prepareBranches(branches []domain.Branch, franchiseName string, newID IDGenerator) ([]domain.Branch, error) {
	out := make([]domain.Branch, 0, len(branches))
	seen := make(map[string]struct{}, len(branches))
	for _, b := range branches {
		name := domain.NormalizeBranchName(b.Name)
		if _, dup := seen[name]; dup {
			return nil, apperrors.NewDuplicateError(apperrors.EntityBranch, name, franchiseName)
		}
		seen[name] = struct{}{}

		products, err := prepareProducts(b.Products, name, newID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.NewBranch(newID(), name, products))
	}
	return out, nil
}
