package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

// StockOverview summarizes the catalog's stock position. When the policy
// enables the global override, its threshold replaces every per-product
// low-stock threshold uniformly.
func StockOverview(products []entity.Product, policy LowStockPolicy) entity.StockOverview {
	ov := entity.StockOverview{InventoryValue: decimal.Zero}
	for i := range products {
		p := &products[i]
		ov.ProductCount++
		threshold := p.LowStockThreshold
		if policy.GlobalOverride {
			threshold = policy.Threshold
		}
		for _, v := range p.Variants {
			ov.VariantCount++
			ov.TotalUnits += v.Stock
			if v.Stock == 0 {
				ov.OutOfStockCount++
			} else if v.Stock <= threshold {
				ov.LowStockCount++
			}
			ov.InventoryValue = ov.InventoryValue.Add(v.Price.Mul(decimal.NewFromInt(int64(v.Stock))))
		}
	}
	return ov
}
