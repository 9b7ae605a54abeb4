package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"franchises/internal/domain"
	apperrors "franchises/internal/errors"
)

func TestCreateFranchise_Success(t *testing.T) {
	repo := newMemoryRepository()
	uc := NewCreateFranchiseUseCase(repo, sequentialIDs("id"), zap.NewNop())

	created, err := uc.Create(context.Background(), domain.Franchise{
		Name: "acme",
		Branches: []domain.Branch{
			{Name: "  Main ", Products: []domain.Product{{Name: "cola", Stock: 3}}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "acme", created.Name)
	assert.Equal(t, int64(1), created.Version)
	require.Len(t, created.Branches, 1)
	assert.Equal(t, "main", created.Branches[0].Name)
	assert.NotEmpty(t, created.Branches[0].ID)
	require.Len(t, created.Branches[0].Products, 1)
	assert.NotEmpty(t, created.Branches[0].Products[0].ID)
	assert.Equal(t, 1, repo.saves)
}

func TestCreateFranchise_KeepsClientID(t *testing.T) {
	repo := newMemoryRepository()
	uc := NewCreateFranchiseUseCase(repo, sequentialIDs("id"), zap.NewNop())

	created, err := uc.Create(context.Background(), domain.Franchise{ID: "custom", Name: "acme"})

	require.NoError(t, err)
	assert.Equal(t, "custom", created.ID)
	assert.NotNil(t, created.Branches)
}

func TestCreateFranchise_DuplicateName(t *testing.T) {
	repo := newMemoryRepository()
	uc := NewCreateFranchiseUseCase(repo, sequentialIDs("id"), zap.NewNop())

	_, err := uc.Create(context.Background(), domain.Franchise{Name: "acme"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), domain.Franchise{Name: "acme"})

	de, ok := apperrors.IsDuplicateError(err)
	require.True(t, ok, "expected DuplicateError, got %T", err)
	assert.Equal(t, apperrors.EntityFranchise, de.Entity)
	assert.Equal(t, "acme", de.Name)
	assert.Len(t, repo.items, 1)
}

func TestCreateFranchise_DuplicateClientID(t *testing.T) {
	repo := &mockFranchiseRepository{
		SaveFunc: func(ctx context.Context, f *domain.Franchise) (*domain.Franchise, error) {
			return nil, apperrors.NewUniqueViolationError("id", errors.New("Duplicate entry for key 'PRIMARY'"))
		},
	}
	uc := NewCreateFranchiseUseCase(repo, sequentialIDs("id"), zap.NewNop())

	_, err := uc.Create(context.Background(), domain.Franchise{ID: "f1", Name: "acme"})

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok, "expected ConflictError, got %T", err)
}

func TestCreateFranchise_DuplicateBranchInPayload(t *testing.T) {
	repo := newMemoryRepository()
	uc := NewCreateFranchiseUseCase(repo, sequentialIDs("id"), zap.NewNop())

	_, err := uc.Create(context.Background(), domain.Franchise{
		Name:     "acme",
		Branches: []domain.Branch{{Name: "Main"}, {Name: "main "}},
	})

	de, ok := apperrors.IsDuplicateError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.EntityBranch, de.Entity)
	assert.Equal(t, 0, repo.saves)
}

func TestCreateFranchise_OtherStoreErrorsPassThrough(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &mockFranchiseRepository{
		SaveFunc: func(ctx context.Context, f *domain.Franchise) (*domain.Franchise, error) {
			return nil, storeErr
		},
	}
	uc := NewCreateFranchiseUseCase(repo, sequentialIDs("id"), zap.NewNop())

	_, err := uc.Create(context.Background(), domain.Franchise{Name: "acme"})

	assert.Same(t, storeErr, err)
}

func TestCreateFranchise_StoreReturnsNoAggregate(t *testing.T) {
	repo := &mockFranchiseRepository{SaveFunc: func(ctx context.Context, f *domain.Franchise) (*domain.Franchise, error) {
		return nil, nil
	}}
	uc := NewCreateFranchiseUseCase(repo, sequentialIDs("id"), zap.NewNop())

	created, err := uc.Create(context.Background(), domain.Franchise{Name: "acme"})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "acme", created.Name)
}

func TestUpdateFranchiseName_Success(t *testing.T) {
	repo := newMemoryRepository(acme())
	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	updated, err := uc.UpdateName(context.Background(), "f1", "globex")

	require.NoError(t, err)
	assert.Equal(t, "globex", updated.Name)
	assert.Len(t, updated.Branches, 2)
	assert.Equal(t, "globex", repo.items["f1"].Name)
}

func TestUpdateFranchiseName_SameNameIsNoop(t *testing.T) {
	repo := newMemoryRepository(acme())
	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	updated, err := uc.UpdateName(context.Background(), "f1", "acme")

	require.NoError(t, err)
	assert.Equal(t, "acme", updated.Name)
	assert.Equal(t, 0, repo.saves)
}

func TestUpdateFranchiseName_Duplicate(t *testing.T) {
	other := domain.Franchise{ID: "f2", Name: "globex"}
	repo := newMemoryRepository(acme(), other)
	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	_, err := uc.UpdateName(context.Background(), "f1", "globex")

	de, ok := apperrors.IsDuplicateError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.EntityFranchise, de.Entity)
	assert.Equal(t, 0, repo.saves)
}

func TestUpdateFranchiseName_RaceCaughtByStore(t *testing.T) {
	repo := repoWith(acme())
	repo.SaveFunc = func(ctx context.Context, f *domain.Franchise) (*domain.Franchise, error) {
		return nil, apperrors.NewUniqueViolationError("name", errors.New("1062"))
	}
	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	_, err := uc.UpdateName(context.Background(), "f1", "globex")

	de, ok := apperrors.IsDuplicateError(err)
	require.True(t, ok)
	assert.Equal(t, "globex", de.Name)
}

func TestUpdateFranchiseName_NotFound(t *testing.T) {
	repo := newMemoryRepository()
	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	_, err := uc.UpdateName(context.Background(), "missing", "x")

	nf, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.EntityFranchise, nf.Entity)
}

func TestGetFranchise(t *testing.T) {
	repo := newMemoryRepository(acme())
	uc := NewGetFranchiseUseCase(repo, zap.NewNop())

	f, err := uc.Get(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "acme", f.Name)

	_, err = uc.Get(context.Background(), "nope")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestGetFranchise_NilResultIsNotFound(t *testing.T) {
	repo := &mockFranchiseRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Franchise, error) {
			return nil, nil
		},
	}
	uc := NewGetFranchiseUseCase(repo, zap.NewNop())

	_, err := uc.Get(context.Background(), "f1")

	nf, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, "f1", nf.ID)
}

func TestGetMaxStock_Example(t *testing.T) {
	repo := repoWith(acme())
	uc := NewGetMaxStockByBranchUseCase(repo, zap.NewNop())

	view, err := uc.GetMaxStock(context.Background(), "f1")

	require.NoError(t, err)
	assert.Equal(t, "f1", view.ID)
	assert.Equal(t, "acme", view.Name)
	require.Len(t, view.Branches, 2)
	assert.Equal(t, []domain.Product{{ID: "p2", Name: "water", Stock: 25}}, view.Branches[0].Products)
	assert.Empty(t, view.Branches[1].Products)
	assert.Equal(t, 0, repo.saveCalls, "max stock must not write")
}

func TestGetMaxStock_TieKeepsFirst(t *testing.T) {
	f := domain.Franchise{ID: "f1", Name: "acme", Branches: []domain.Branch{
		domain.NewBranch("b1", "main", []domain.Product{
			{ID: "a", Stock: 20}, {ID: "b", Stock: 20}, {ID: "c", Stock: 10},
		}),
	}}
	uc := NewGetMaxStockByBranchUseCase(repoWith(f), zap.NewNop())

	view, err := uc.GetMaxStock(context.Background(), "f1")

	require.NoError(t, err)
	require.Len(t, view.Branches[0].Products, 1)
	assert.Equal(t, "a", view.Branches[0].Products[0].ID)
}

func TestGetMaxStock_FranchiseNotFound(t *testing.T) {
	repo := repoWith(acme())
	uc := NewGetMaxStockByBranchUseCase(repo, zap.NewNop())

	_, err := uc.GetMaxStock(context.Background(), "missing")

	nf, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.EntityFranchise, nf.Entity)
}
