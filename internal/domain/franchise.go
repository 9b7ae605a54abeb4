package domain

// Franchise is the aggregate root. It is loaded and saved as a whole.
// Version is managed by the store and guards against lost updates.
type Franchise struct {
	ID       string
	Name     string
	Version  int64
	Branches []Branch
}

func (f *Franchise) FindBranchByID(id string) *Branch {
	for i := range f.Branches {
		if f.Branches[i].ID == id {
			return &f.Branches[i]
		}
	}
	return nil
}

// ExistsBranchByName compares against stored names as-is; callers pass an
// already normalized candidate.
func (f *Franchise) ExistsBranchByName(name string) bool {
	return f.ExistsOtherBranchByName(name, "")
}

func (f *Franchise) ExistsOtherBranchByName(name, exceptID string) bool {
	for _, b := range f.Branches {
		if b.ID != exceptID && b.Name == name {
			return true
		}
	}
	return false
}

func (f *Franchise) AddBranch(b Branch) {
	f.Branches = append(f.Branches, b)
}

// MaxStockView projects the franchise so that every branch keeps only its
// product with the highest stock. Branches without products keep an empty list.
func (f Franchise) MaxStockView() Franchise {
	branches := make([]Branch, 0, len(f.Branches))
	for _, b := range f.Branches {
		products := []Product{}
		if p, ok := b.MaxStockProduct(); ok {
			products = append(products, p)
		}
		branches = append(branches, Branch{
			ID:       b.ID,
			Name:     b.Name,
			Products: products,
		})
	}
	return Franchise{
		ID:       f.ID,
		Name:     f.Name,
		Version:  f.Version,
		Branches: branches,
	}
}

// Clone returns a deep copy so callers can mutate it freely.
func (f Franchise) Clone() Franchise {
	out := Franchise{ID: f.ID, Name: f.Name, Version: f.Version}
	if f.Branches != nil {
		out.Branches = make([]Branch, len(f.Branches))
		for i, b := range f.Branches {
			out.Branches[i] = Branch{ID: b.ID, Name: b.Name}
			if b.Products != nil {
				out.Branches[i].Products = make([]Product, len(b.Products))
				copy(out.Branches[i].Products, b.Products)
			}
		}
	}
	return out
}
