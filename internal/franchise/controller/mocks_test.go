package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"franchises/internal/domain"
)

type mockCreateFranchise struct {
	CreateFunc func(ctx context.Context, franchise domain.Franchise) (*domain.Franchise, error)
}

func (m *mockCreateFranchise) Create(ctx context.Context, franchise domain.Franchise) (*domain.Franchise, error) {
	return m.CreateFunc(ctx, franchise)
}

type mockGetFranchise struct {
	GetFunc func(ctx context.Context, franchiseID string) (*domain.Franchise, error)
}

func (m *mockGetFranchise) Get(ctx context.Context, franchiseID string) (*domain.Franchise, error) {
	return m.GetFunc(ctx, franchiseID)
}

type mockUpdateFranchiseName struct {
	UpdateNameFunc func(ctx context.Context, franchiseID, name string) (*domain.Franchise, error)
}

func (m *mockUpdateFranchiseName) UpdateName(ctx context.Context, franchiseID, name string) (*domain.Franchise, error) {
	return m.UpdateNameFunc(ctx, franchiseID, name)
}

type mockGetMaxStock struct {
	GetMaxStockFunc func(ctx context.Context, franchiseID string) (*domain.Franchise, error)
}

func (m *mockGetMaxStock) GetMaxStock(ctx context.Context, franchiseID string) (*domain.Franchise, error) {
	return m.GetMaxStockFunc(ctx, franchiseID)
}

type mockAddBranch struct {
	AddBranchFunc func(ctx context.Context, franchiseID string, branch domain.Branch) (*domain.Branch, error)
}

func (m *mockAddBranch) AddBranch(ctx context.Context, franchiseID string, branch domain.Branch) (*domain.Branch, error) {
	return m.AddBranchFunc(ctx, franchiseID, branch)
}

type mockUpdateBranchName struct {
	UpdateNameFunc func(ctx context.Context, franchiseID, branchID, name string) (*domain.Branch, error)
}

func (m *mockUpdateBranchName) UpdateName(ctx context.Context, franchiseID, branchID, name string) (*domain.Branch, error) {
	return m.UpdateNameFunc(ctx, franchiseID, branchID, name)
}

type mockAddProduct struct {
	AddProductFunc func(ctx context.Context, franchiseID, branchID string, product domain.Product) (*domain.Product, error)
}

func (m *mockAddProduct) AddProduct(ctx context.Context, franchiseID, branchID string, product domain.Product) (*domain.Product, error) {
	return m.AddProductFunc(ctx, franchiseID, branchID, product)
}

type mockUpdateProduct struct {
	UpdateProductFunc func(ctx context.Context, franchiseID, branchID, productID string, patch domain.ProductPatch) (*domain.Product, error)
}

func (m *mockUpdateProduct) UpdateProduct(ctx context.Context, franchiseID, branchID, productID string, patch domain.ProductPatch) (*domain.Product, error) {
	return m.UpdateProductFunc(ctx, franchiseID, branchID, productID, patch)
}

type mockDeleteProduct struct {
	DeleteProductFunc func(ctx context.Context, franchiseID, branchID, productID string) error
}

func (m *mockDeleteProduct) DeleteProduct(ctx context.Context, franchiseID, branchID, productID string) error {
	return m.DeleteProductFunc(ctx, franchiseID, branchID, productID)
}

// route mounts a single handler under pattern so chi.URLParam resolves.
func route(method, pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)
	return r
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

var nopLogger = zap.NewNop()
