package domain

import (
	"math"
	"strings"
)

type Product struct {
	ID    string
	Name  string
	Stock int
}

// ProductPatch carries a partial product update. Nil fields are left untouched.
// StockDelta is added to the current stock; negative deltas and deltas that
// would overflow the stock are ignored.
type ProductPatch struct {
	Name       *string
	StockDelta *int
}

func (p *Product) ApplyPatch(patch ProductPatch) {
	if patch.Name != nil && !IsBlank(*patch.Name) {
		p.Name = *patch.Name
	}
	if patch.StockDelta != nil && *patch.StockDelta >= 0 && !p.StockOverflows(*patch.StockDelta) {
		p.Stock += *patch.StockDelta
	}
}

// StockOverflows reports whether adding delta would exceed the int range.
func (p Product) StockOverflows(delta int) bool {
	return delta > 0 && p.Stock > math.MaxInt-delta
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
