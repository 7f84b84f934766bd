package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

// BestSellers ranks products by units sold in the window, descending, ties
// broken by revenue descending, then name for a stable order. Stock-cover
// days estimate how long remaining stock lasts at the window's velocity and
// stay zero for products with no sales.
func BestSellers(products []entity.Product, orders []entity.Order, window entity.TimeRange, limit int) []entity.BestSeller {
	tallies := tallySales(orders, window)
	days := decimal.NewFromInt(int64(window.Days()))
	rows := make([]entity.BestSeller, 0, len(products))
	for i := range products {
		p := &products[i]
		t := tallies[p.ID]
		row := entity.BestSeller{
			ProductID:      p.ID,
			ProductName:    p.Name,
			UnitsSold:      t.units,
			Revenue:        t.revenue,
			StockRemaining: p.TotalStock(),
			StockCoverDays: decimal.Zero,
		}
		if t.units > 0 {
			// stock / (units per day) == stock * days / units
			row.StockCoverDays = decimal.NewFromInt(int64(row.StockRemaining)).
				Mul(days).
				Div(decimal.NewFromInt(int64(t.units))).
				Round(1)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].UnitsSold != rows[j].UnitsSold {
			return rows[i].UnitsSold > rows[j].UnitsSold
		}
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].ProductName < rows[j].ProductName
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// SlowMovers ranks products that still hold stock by ascending units sold,
// zero-sales products first. Out-of-stock products are not slow movers and
// are excluded up front.
func SlowMovers(products []entity.Product, orders []entity.Order, window entity.TimeRange, limit int) []entity.SlowMover {
	tallies := tallySales(orders, window)
	rows := make([]entity.SlowMover, 0, len(products))
	for i := range products {
		p := &products[i]
		stock := p.TotalStock()
		if stock <= 0 {
			continue
		}
		rows = append(rows, entity.SlowMover{
			ProductID:      p.ID,
			ProductName:    p.Name,
			UnitsSold:      tallies[p.ID].units,
			StockRemaining: stock,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].UnitsSold != rows[j].UnitsSold {
			return rows[i].UnitsSold < rows[j].UnitsSold
		}
		if rows[i].StockRemaining != rows[j].StockRemaining {
			return rows[i].StockRemaining > rows[j].StockRemaining
		}
		return rows[i].ProductName < rows[j].ProductName
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// DiscontinueCandidates lists products whose stock is at or above the
// threshold with exactly zero sales in the lookback window. Products already
// flagged discontinued stay eligible; the flag is carried for distinct
// rendering without changing the rule.
func DiscontinueCandidates(products []entity.Product, orders []entity.Order, restocks []entity.RestockLog, window entity.TimeRange, stockThreshold int, now time.Time) []entity.DiscontinueCandidate {
	if stockThreshold <= 0 {
		stockThreshold = DefaultDiscontinueStockThreshold
	}
	tallies := tallySales(orders, window)
	last := lastSoldDates(orders)
	yearRestocks := restockTally(restocks, calendarYear(now.Year(), now.Location()))
	rows := make([]entity.DiscontinueCandidate, 0)
	for i := range products {
		p := &products[i]
		if p.TotalStock() < stockThreshold || tallies[p.ID].units != 0 {
			continue
		}
		row := entity.DiscontinueCandidate{
			ProductID:           p.ID,
			ProductName:         p.Name,
			StockRemaining:      p.TotalStock(),
			RestocksThisYear:    yearRestocks[p.ID].RestockCount,
			AlreadyDiscontinued: p.Discontinued,
		}
		if d, ok := last[p.ID]; ok {
			sold := d
			row.LastSold = &sold
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].StockRemaining != rows[j].StockRemaining {
			return rows[i].StockRemaining > rows[j].StockRemaining
		}
		return rows[i].ProductName < rows[j].ProductName
	})
	return rows
}
