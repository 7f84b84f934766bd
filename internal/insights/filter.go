// Package insights computes windowed business metrics over order snapshots.
// Every function is a pure transform of its arguments: inputs are never
// mutated and no state survives a call.
package insights

import (
	"github.com/aurumline/insights/internal/entity"
)

// FilterByWindow returns the orders whose effective date lies in the
// half-open window. Orders without a usable date are dropped here and only
// here. With includeRefunded false, refunded orders are excluded entirely;
// refund and status views pass true so refunded orders stay visible.
func FilterByWindow(orders []entity.Order, window entity.TimeRange, includeRefunded bool) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		d, ok := o.EffectiveDate()
		if !ok || !window.Contains(d) {
			continue
		}
		if !includeRefunded && o.IsRefunded() {
			continue
		}
		out = append(out, o)
	}
	return out
}

// CountMissingDate reports how many orders lack any usable date and were
// therefore invisible to windowed views.
func CountMissingDate(orders []entity.Order) int {
	n := 0
	for _, o := range orders {
		if _, ok := o.EffectiveDate(); !ok {
			n++
		}
	}
	return n
}
