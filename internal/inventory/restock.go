package inventory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aurumline/insights/internal/entity"
)

// RestockSort selects the ranking metric for restock-derived reports.
type RestockSort string

const (
	SortByRestockCount RestockSort = "restocks"
	SortByUnits        RestockSort = "units"
)

// NewDesignSort selects the ranking metric for new-design tracking.
type NewDesignSort string

const (
	NewDesignByRestocks NewDesignSort = "restocks"
	NewDesignBySold     NewDesignSort = "sold"
	NewDesignByStock    NewDesignSort = "stock"
)

// RestockFrequency aggregates restock log entries per product within the
// window, sortable by entry count or by units added.
func RestockFrequency(products []entity.Product, restocks []entity.RestockLog, window entity.TimeRange, by RestockSort) []entity.RestockStat {
	tallies := restockTally(restocks, window)
	names := make(map[uuid.UUID]string, len(products))
	for i := range products {
		names[products[i].ID] = products[i].Name
	}
	rows := make([]entity.RestockStat, 0, len(tallies))
	for id, t := range tallies {
		name := names[id]
		if name == "" {
			// restock entry for a product no longer in the catalog
			name = unknownLabel
		}
		rows = append(rows, entity.RestockStat{
			ProductID:    id,
			ProductName:  name,
			RestockCount: t.RestockCount,
			UnitsAdded:   t.UnitsAdded,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if by == SortByUnits {
			if a.UnitsAdded != b.UnitsAdded {
				return a.UnitsAdded > b.UnitsAdded
			}
		} else if a.RestockCount != b.RestockCount {
			return a.RestockCount > b.RestockCount
		}
		return a.ProductName < b.ProductName
	})
	return rows
}

// NewDesignStats analyzes products tagged with the given design year:
// restock cadence and units sold within that calendar year, plus what is
// left in stock.
func NewDesignStats(products []entity.Product, orders []entity.Order, restocks []entity.RestockLog, year int, by NewDesignSort) []entity.NewDesignStat {
	window := calendarYear(year, time.UTC)
	sales := tallySales(orders, window)
	restocked := restockTally(restocks, window)
	rows := make([]entity.NewDesignStat, 0)
	for i := range products {
		p := &products[i]
		if p.NewDesignYear != year {
			continue
		}
		rows = append(rows, entity.NewDesignStat{
			ProductID:      p.ID,
			ProductName:    p.Name,
			Year:           year,
			RestockCount:   restocked[p.ID].RestockCount,
			RestockUnits:   restocked[p.ID].UnitsAdded,
			UnitsSold:      sales[p.ID].units,
			StockRemaining: p.TotalStock(),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch by {
		case NewDesignBySold:
			if a.UnitsSold != b.UnitsSold {
				return a.UnitsSold > b.UnitsSold
			}
		case NewDesignByStock:
			if a.StockRemaining != b.StockRemaining {
				return a.StockRemaining > b.StockRemaining
			}
		default:
			if a.RestockCount != b.RestockCount {
				return a.RestockCount > b.RestockCount
			}
		}
		return a.ProductName < b.ProductName
	})
	return rows
}
