package insights

import (
	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

var hundred = decimal.NewFromInt(100)

// SalesTotals are the scalar revenue/volume metrics of one filtered set.
type SalesTotals struct {
	Gross            decimal.Decimal
	Orders           int
	Units            int
	AvgOrderValue    decimal.Decimal
	AvgItemsPerOrder decimal.Decimal
}

// ComputeSalesTotals reduces a refund-excluded order set to its revenue and
// volume totals in one pass. Averages fall back to zero on an empty set.
func ComputeSalesTotals(orders []entity.Order) SalesTotals {
	t := SalesTotals{Gross: decimal.Zero, AvgOrderValue: decimal.Zero, AvgItemsPerOrder: decimal.Zero}
	for _, o := range orders {
		t.Gross = t.Gross.Add(o.TotalAmount)
		t.Units += o.UnitCount()
		t.Orders++
	}
	if t.Orders > 0 {
		n := decimal.NewFromInt(int64(t.Orders))
		t.AvgOrderValue = t.Gross.Div(n).Round(2)
		t.AvgItemsPerOrder = decimal.NewFromInt(int64(t.Units)).Div(n).Round(2)
	}
	return t
}

// RefundStats are the refund-side metrics of one filtered set. The input
// must include refunded orders, otherwise full refunds are invisible.
type RefundStats struct {
	Count int
	Total decimal.Decimal
}

// ComputeRefundStats sums refunded portions: partial refunds contribute only
// the refunded amount, never the full order total.
func ComputeRefundStats(orders []entity.Order) RefundStats {
	s := RefundStats{Total: decimal.Zero}
	for _, o := range orders {
		portion := o.RefundedPortion()
		if portion.IsZero() {
			continue
		}
		s.Total = s.Total.Add(portion)
		s.Count++
	}
	return s
}

// NetRevenue is gross minus refunds, floored at zero.
func NetRevenue(gross, refunds decimal.Decimal) decimal.Decimal {
	net := gross.Sub(refunds)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// RefundRate is refunds over gross as a percentage, zero when gross is zero.
func RefundRate(gross, refunds decimal.Decimal) decimal.Decimal {
	if gross.IsZero() {
		return decimal.Zero
	}
	return refunds.Div(gross).Mul(hundred).Round(2)
}
