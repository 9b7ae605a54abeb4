package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProduct_ApplyPatch(t *testing.T) {
	tests := []struct {
		name      string
		patch     ProductPatch
		wantName  string
		wantStock int
	}{
		{"positive delta increments stock", ProductPatch{StockDelta: intPtr(5)}, "cola", 15},
		{"zero delta keeps stock", ProductPatch{StockDelta: intPtr(0)}, "cola", 10},
		{"negative delta is ignored", ProductPatch{StockDelta: intPtr(-3)}, "cola", 10},
		{"nil delta is ignored", ProductPatch{}, "cola", 10},
		{"new name replaces old", ProductPatch{Name: strPtr("lemonade")}, "lemonade", 10},
		{"blank name is ignored", ProductPatch{Name: strPtr("   ")}, "cola", 10},
		{"empty name is ignored", ProductPatch{Name: strPtr("")}, "cola", 10},
		{"both fields", ProductPatch{Name: strPtr("water"), StockDelta: intPtr(1)}, "water", 11},
		{"overflowing delta is ignored", ProductPatch{StockDelta: intPtr(math.MaxInt)}, "cola", 10},
		{"largest safe delta is applied", ProductPatch{StockDelta: intPtr(math.MaxInt - 10)}, "cola", math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{ID: "p1", Name: "cola", Stock: 10}
			p.ApplyPatch(tt.patch)

			assert.Equal(t, "p1", p.ID)
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.wantStock, p.Stock)
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" a "))
}

func TestProduct_StockOverflows(t *testing.T) {
	p := Product{Stock: 10}

	assert.False(t, p.StockOverflows(0))
	assert.False(t, p.StockOverflows(-5))
	assert.False(t, p.StockOverflows(math.MaxInt-10))
	assert.True(t, p.StockOverflows(math.MaxInt-9))
	assert.True(t, p.StockOverflows(math.MaxInt))
}
