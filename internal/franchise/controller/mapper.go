package controller

import (
	"franchises/internal/domain"
	"franchises/internal/dto"
)

func toDomainFranchise(req dto.CreateFranchiseRequest) domain.Franchise {
	branches := make([]domain.Branch, len(req.Branches))
	for i, b := range req.Branches {
		branches[i] = toDomainBranch(b)
	}
	return domain.Franchise{ID: req.ID, Name: req.Name, Branches: branches}
}

func toDomainBranch(req dto.BranchRequest) domain.Branch {
	products := make([]domain.Product, len(req.Products))
	for i, p := range req.Products {
		products[i] = toDomainProduct(p)
	}
	return domain.Branch{Name: req.Name, Products: products}
}

func toDomainProduct(req dto.ProductRequest) domain.Product {
	p := domain.Product{Name: req.Name}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	return p
}

func toFranchiseResponse(f *domain.Franchise) dto.FranchiseResponse {
	return dto.FranchiseResponse{
		ID:       f.ID,
		Name:     f.Name,
		Version:  f.Version,
		Branches: toBranchResponses(f.Branches),
	}
}

func toMaxStockResponse(f *domain.Franchise) dto.MaxStockResponse {
	return dto.MaxStockResponse{
		FranchiseID:   f.ID,
		FranchiseName: f.Name,
		Branches:      toBranchResponses(f.Branches),
	}
}

func toBranchResponses(branches []domain.Branch) []dto.BranchResponse {
	out := make([]dto.BranchResponse, len(branches))
	for i := range branches {
		out[i] = toBranchResponse(&branches[i])
	}
	return out
}

func toBranchResponse(b *domain.Branch) dto.BranchResponse {
	products := make([]dto.ProductResponse, len(b.Products))
	for i := range b.Products {
		products[i] = toProductResponse(&b.Products[i])
	}
	return dto.BranchResponse{ID: b.ID, Name: b.Name, Products: products}
}

func toProductResponse(p *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, Stock: p.Stock}
}
