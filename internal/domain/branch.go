package domain

import "strings"

type Branch struct {
	ID       string
	Name     string
	Products []Product
}

// NewBranch builds a branch with its name in canonical form.
func NewBranch(id, name string, products []Product) Branch {
	if products == nil {
		products = []Product{}
	}
	return Branch{
		ID:       id,
		Name:     NormalizeBranchName(name),
		Products: products,
	}
}

// NormalizeBranchName is the only place branch names are canonicalized.
// Stored names are always compared verbatim after this.
func NormalizeBranchName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (b *Branch) FindProductByID(id string) *Product {
	for i := range b.Products {
		if b.Products[i].ID == id {
			return &b.Products[i]
		}
	}
	return nil
}

// ExistsProductByName reports whether a product already uses name.
// Blank names never collide so partial updates can skip the check.
func (b *Branch) ExistsProductByName(name string) bool {
	return b.ExistsOtherProductByName(name, "")
}

func (b *Branch) ExistsOtherProductByName(name, exceptID string) bool {
	if IsBlank(name) {
		return false
	}
	for _, p := range b.Products {
		if p.ID != exceptID && p.Name == name {
			return true
		}
	}
	return false
}

func (b *Branch) AddProduct(p Product) {
	b.Products = append(b.Products, p)
}

// RemoveProduct drops the product with the given id and reports whether
// anything was removed. Remaining products keep their order.
func (b *Branch) RemoveProduct(id string) bool {
	kept := make([]Product, 0, len(b.Products))
	removed := false
	for _, p := range b.Products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if removed {
		b.Products = kept
	}
	return removed
}

// MaxStockProduct returns the first product holding the highest stock.
func (b Branch) MaxStockProduct() (Product, bool) {
	if len(b.Products) == 0 {
		return Product{}, false
	}
	best := b.Products[0]
	for _, p := range b.Products[1:] {
		if p.Stock > best.Stock {
			best = p
		}
	}
	return best, true
}
