// Package inventory joins the product catalog with order history and
// restock logs to produce inventory-health rankings. Like the insights
// package it is pure: snapshots in, report rows out.
package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

// DefaultDiscontinueStockThreshold is the stock floor for discontinue
// candidates when the caller does not override it.
const DefaultDiscontinueStockThreshold = 5

// unknownLabel stands in for names the snapshot cannot resolve.
const unknownLabel = "Unknown"

// LowStockPolicy selects how low-stock items are counted: per-product
// thresholds, or one global threshold replacing every per-product value.
type LowStockPolicy struct {
	GlobalOverride bool
	Threshold      int
}

// salesTally is the per-product sales aggregate one history pass produces.
type salesTally struct {
	units   int
	revenue decimal.Decimal
}

// tallySales sums units and revenue per product over the window, excluding
// refunded orders. Orders without a usable date never reach a tally.
func tallySales(orders []entity.Order, window entity.TimeRange) map[uuid.UUID]salesTally {
	tallies := make(map[uuid.UUID]salesTally)
	for _, o := range orders {
		d, ok := o.EffectiveDate()
		if !ok || !window.Contains(d) || o.IsRefunded() {
			continue
		}
		for _, it := range o.Items {
			t := tallies[it.ProductID]
			t.units += it.Quantity
			t.revenue = t.revenue.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
			tallies[it.ProductID] = t
		}
	}
	return tallies
}

// lastSoldDates finds the most recent effective sale date per product over
// the entire history, excluding refunded orders.
func lastSoldDates(orders []entity.Order) map[uuid.UUID]time.Time {
	last := make(map[uuid.UUID]time.Time)
	for _, o := range orders {
		d, ok := o.EffectiveDate()
		if !ok || o.IsRefunded() {
			continue
		}
		for _, it := range o.Items {
			if prev, seen := last[it.ProductID]; !seen || d.After(prev) {
				last[it.ProductID] = d
			}
		}
	}
	return last
}

// restockTally counts restock entries and units per product within a window.
func restockTally(restocks []entity.RestockLog, window entity.TimeRange) map[uuid.UUID]entity.RestockStat {
	tallies := make(map[uuid.UUID]entity.RestockStat)
	for _, r := range restocks {
		if r.Timestamp.IsZero() || !window.Contains(r.Timestamp) {
			continue
		}
		t := tallies[r.ProductID]
		t.RestockCount++
		t.UnitsAdded += r.Quantity
		tallies[r.ProductID] = t
	}
	return tallies
}

func calendarYear(year int, loc *time.Location) entity.TimeRange {
	return entity.TimeRange{
		From: time.Date(year, 1, 1, 0, 0, 0, 0, loc),
		To:   time.Date(year+1, 1, 1, 0, 0, 0, 0, loc),
	}
}
