package dto

type CreateFranchiseRequest struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Branches []BranchRequest `json:"branches,omitempty"`
}

type UpdateNameRequest struct {
	Name string `json:"name"`
}

type BranchRequest struct {
	Name     string           `json:"name"`
	Products []ProductRequest `json:"products,omitempty"`
}

type ProductRequest struct {
	Name  string `json:"name"`
	Stock *int   `json:"stock"`
}

// UpdateProductRequest carries a partial update. Stock is added to the
// current stock, it does not replace it.
type UpdateProductRequest struct {
	Name  *string `json:"name,omitempty"`
	Stock *int    `json:"stock,omitempty"`
}
