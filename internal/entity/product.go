package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog entry with its sellable variants.
type Product struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	Categories        []string         `json:"categories"`
	Variants          []ProductVariant `json:"variants"`
	LowStockThreshold int              `json:"low_stock_threshold"`
	CreatedAt         time.Time        `json:"created_at"`
	NewDesignYear     int              `json:"new_design_year,omitempty"`
	Discontinued      bool             `json:"discontinued,omitempty"`
}

// TotalStock sums current stock across all variants.
func (p *Product) TotalStock() int {
	stock := 0
	for _, v := range p.Variants {
		stock += v.Stock
	}
	return stock
}

// StockValue is the product's inventory value: stock times selling price
// per variant.
func (p *Product) StockValue() decimal.Decimal {
	value := decimal.Zero
	for _, v := range p.Variants {
		value = value.Add(v.Price.Mul(decimal.NewFromInt(int64(v.Stock))))
	}
	return value
}

// ProductVariant is one sellable variation of a product (size, color,
// material) with its own SKU and stock count.
type ProductVariant struct {
	ID      uuid.UUID         `json:"id"`
	SKU     string            `json:"sku"`
	Barcode string            `json:"barcode,omitempty"`
	Stock   int               `json:"stock"`
	Price   decimal.Decimal   `json:"price"`
	Options map[string]string `json:"options,omitempty"`
}

// Label renders the variant's option values in a deterministic order,
// e.g. "Color: Gold / Size: 7".
func (v *ProductVariant) Label() string {
	if len(v.Options) == 0 {
		return v.SKU
	}
	names := make([]string, 0, len(v.Options))
	for name := range v.Options {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+v.Options[name])
	}
	return strings.Join(parts, " / ")
}
