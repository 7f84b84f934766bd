package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BestSeller is one row of the best-sellers ranking for a window.
type BestSeller struct {
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name"`
	UnitsSold      int             `json:"units_sold"`
	Revenue        decimal.Decimal `json:"revenue"`
	StockRemaining int             `json:"stock_remaining"`
	// StockCoverDays estimates how long current stock lasts at the window's
	// sales velocity. Zero when nothing sold in the window.
	StockCoverDays decimal.Decimal `json:"stock_cover_days"`
}

// SlowMover is an in-stock product ranked by ascending sales velocity.
type SlowMover struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	UnitsSold      int       `json:"units_sold"`
	StockRemaining int       `json:"stock_remaining"`
}

// DiscontinueCandidate is a product holding stock with zero sales in the
// lookback window.
type DiscontinueCandidate struct {
	ProductID           uuid.UUID  `json:"product_id"`
	ProductName         string     `json:"product_name"`
	StockRemaining      int        `json:"stock_remaining"`
	LastSold            *time.Time `json:"last_sold,omitempty"`
	RestocksThisYear    int        `json:"restocks_this_year"`
	AlreadyDiscontinued bool       `json:"already_discontinued,omitempty"`
}

// NewDesignStat tracks restock cadence and sales for a product tagged with
// a design year.
type NewDesignStat struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Year           int       `json:"year"`
	RestockCount   int       `json:"restock_count"`
	RestockUnits   int       `json:"restock_units"`
	UnitsSold      int       `json:"units_sold"`
	StockRemaining int       `json:"stock_remaining"`
}

// RestockStat aggregates restock log entries per product within a window.
type RestockStat struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	RestockCount int       `json:"restock_count"`
	UnitsAdded   int       `json:"units_added"`
}

// StockOverview summarizes the whole catalog's stock position.
type StockOverview struct {
	TotalUnits      int             `json:"total_units"`
	ProductCount    int             `json:"product_count"`
	VariantCount    int             `json:"variant_count"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
}
