package usecase

import (
	"context"
	"fmt"

	"franchises/internal/domain"
	apperrors "franchises/internal/errors"
)

type mockFranchiseRepository struct {
	SaveFunc       func(ctx context.Context, franchise *domain.Franchise) (*domain.Franchise, error)
	FindByIDFunc   func(ctx context.Context, id string) (*domain.Franchise, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Franchise, error)

	saveCalls int
	saved     []domain.Franchise
}

func (m *mockFranchiseRepository) Save(ctx context.Context, franchise *domain.Franchise) (*domain.Franchise, error) {
	m.saveCalls++
	m.saved = append(m.saved, franchise.Clone())
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, franchise)
	}
	out := franchise.Clone()
	out.Version++
	return &out, nil
}

func (m *mockFranchiseRepository) FindByID(ctx context.Context, id string) (*domain.Franchise, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockFranchiseRepository) FindByName(ctx context.Context, name string) (*domain.Franchise, error) {
	return m.FindByNameFunc(ctx, name)
}

// lastSaved returns the aggregate passed to the most recent Save call.
func (m *mockFranchiseRepository) lastSaved() domain.Franchise {
	return m.saved[len(m.saved)-1]
}

// repoWith serves copies of the given franchise and reports NotFound for any
// other id, like a real store would.
func repoWith(f domain.Franchise) *mockFranchiseRepository {
	return &mockFranchiseRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Franchise, error) {
			if id != f.ID {
				return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, id)
			}
			c := f.Clone()
			return &c, nil
		},
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Franchise, error) {
			if name != f.Name {
				return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, name)
			}
			c := f.Clone()
			return &c, nil
		},
	}
}

// memoryRepository keeps saved aggregates so consecutive calls see each
// other's writes.
type memoryRepository struct {
	items map[string]domain.Franchise
	saves int
}

func newMemoryRepository(seed ...domain.Franchise) *memoryRepository {
	r := &memoryRepository{items: map[string]domain.Franchise{}}
	for _, f := range seed {
		r.items[f.ID] = f.Clone()
	}
	return r
}

func (r *memoryRepository) Save(ctx context.Context, franchise *domain.Franchise) (*domain.Franchise, error) {
	for id, existing := range r.items {
		if id != franchise.ID && existing.Name == franchise.Name {
			return nil, apperrors.NewUniqueViolationError("name", fmt.Errorf("duplicate name %q", franchise.Name))
		}
	}
	r.saves++
	stored := franchise.Clone()
	stored.Version++
	r.items[stored.ID] = stored
	out := stored.Clone()
	return &out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*domain.Franchise, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, id)
	}
	c := f.Clone()
	return &c, nil
}

func (r *memoryRepository) FindByName(ctx context.Context, name string) (*domain.Franchise, error) {
	for _, f := range r.items {
		if f.Name == name {
			c := f.Clone()
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, name)
}

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func acme() domain.Franchise {
	return domain.Franchise{
		ID:      "f1",
		Name:    "acme",
		Version: 1,
		Branches: []domain.Branch{
			domain.NewBranch("b1", "main", []domain.Product{
				{ID: "p1", Name: "cola", Stock: 10},
				{ID: "p2", Name: "water", Stock: 25},
			}),
			domain.NewBranch("b2", "north", nil),
		},
	}
}
