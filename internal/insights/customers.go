package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

// FirstOrderDates scans the entire order history and returns the earliest
// effective order date per customer. The full-history scan is what keeps a
// long-time customer from being misclassified as new inside a short window.
func FirstOrderDates(history []entity.Order) map[string]time.Time {
	first := make(map[string]time.Time, len(history))
	for _, o := range history {
		d, ok := o.EffectiveDate()
		if !ok {
			continue
		}
		key := o.CustomerKey()
		if prev, seen := first[key]; !seen || d.Before(prev) {
			first[key] = d
		}
	}
	return first
}

// NewCustomerCount counts distinct customers whose first-ever order falls
// inside the window.
func NewCustomerCount(windowOrders []entity.Order, first map[string]time.Time, window entity.TimeRange) int {
	seen := make(map[string]bool)
	count := 0
	for _, o := range windowOrders {
		key := o.CustomerKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		if d, ok := first[key]; ok && window.Contains(d) {
			count++
		}
	}
	return count
}

// SplitCustomers classifies every order in the window as a new-customer or
// returning-customer order by the same first-order rule, and reports the
// returning share (zero when the window is empty).
func SplitCustomers(windowOrders []entity.Order, first map[string]time.Time, window entity.TimeRange) entity.CustomerSplit {
	var split entity.CustomerSplit
	for _, o := range windowOrders {
		if d, ok := first[o.CustomerKey()]; ok && window.Contains(d) {
			split.New++
		} else {
			split.Returning++
		}
	}
	if total := split.New + split.Returning; total > 0 {
		split.ReturningPct = roundPct(decimal.NewFromInt(int64(split.Returning)), decimal.NewFromInt(int64(total)))
	}
	return split
}

// TopCustomers ranks customers in the filtered set by total spend. Each
// entry carries its share of the whole set's spend, so percentages stay
// stable regardless of the limit.
func TopCustomers(orders []entity.Order, limit int) []entity.CustomerMetric {
	byKey := make(map[string]*entity.CustomerMetric)
	total := decimal.Zero
	for _, o := range orders {
		key := o.CustomerKey()
		m, ok := byKey[key]
		if !ok {
			label := o.CustomerName
			if label == "" {
				label = unknownLabel
			}
			m = &entity.CustomerMetric{Label: label, CustomerID: o.CustomerID, Value: decimal.Zero}
			byKey[key] = m
		}
		m.Value = m.Value.Add(o.TotalAmount)
		m.Count++
		total = total.Add(o.TotalAmount)
	}
	ranked := make([]entity.CustomerMetric, 0, len(byKey))
	for _, m := range byKey {
		m.Percentage = roundPct(m.Value, total)
		ranked = append(ranked, *m)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Value.Equal(ranked[j].Value) {
			return ranked[i].Value.GreaterThan(ranked[j].Value)
		}
		return ranked[i].Label < ranked[j].Label
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CustomersByField groups distinct customers by an order label (delivery
// state, platform). Value carries their combined spend, Count the distinct
// customers, Percentage the count share.
func CustomersByField(orders []entity.Order, labelOf func(*entity.Order) string) []entity.BreakdownEntry {
	type group struct {
		value     decimal.Decimal
		customers map[string]bool
	}
	groups := make(map[string]*group)
	for i := range orders {
		o := &orders[i]
		label := labelOf(o)
		if label == "" {
			label = unknownLabel
		}
		g, ok := groups[label]
		if !ok {
			g = &group{value: decimal.Zero, customers: make(map[string]bool)}
			groups[label] = g
		}
		g.value = g.value.Add(o.TotalAmount)
		g.customers[o.CustomerKey()] = true
	}
	total := 0
	for _, g := range groups {
		total += len(g.customers)
	}
	entries := make([]entity.BreakdownEntry, 0, len(groups))
	for label, g := range groups {
		e := entity.BreakdownEntry{Label: label, Value: g.value, Count: len(g.customers)}
		if total > 0 {
			e.Percentage = roundPct(decimal.NewFromInt(int64(e.Count)), decimal.NewFromInt(int64(total)))
		}
		entries = append(entries, e)
	}
	sortBreakdown(entries)
	return entries
}
