package insights

import (
	"time"

	"github.com/aurumline/insights/internal/entity"
	"github.com/aurumline/insights/internal/timerange"
)

// topCustomersLimit bounds the spend ranking on the report.
const topCustomersLimit = 10

// BuildReport computes the full business report for a symbolic range
// anchored at now. Orders are partitioned once per window; every metric
// derives from those partitions rather than re-filtering the history.
func BuildReport(orders []entity.Order, rng timerange.Range, now time.Time) (*entity.BusinessMetrics, error) {
	windows, err := timerange.Resolve(rng, now)
	if err != nil {
		return nil, err
	}
	g := rng.Granularity()

	curAll := FilterByWindow(orders, windows.Current, true)
	curSales := withoutRefunded(curAll)
	prevAll := FilterByWindow(orders, windows.Previous, true)
	prevSales := withoutRefunded(prevAll)

	cur := ComputeSalesTotals(curSales)
	prev := ComputeSalesTotals(prevSales)
	curRefunds := ComputeRefundStats(curAll)
	prevRefunds := ComputeRefundStats(prevAll)

	first := FirstOrderDates(orders)
	curNew := NewCustomerCount(curSales, first, windows.Current)
	prevNew := NewCustomerCount(prevSales, first, windows.Previous)

	m := &entity.BusinessMetrics{
		Period:         windows.Current,
		PreviousPeriod: windows.Previous,
		Granularity:    g,

		TotalSales:       Compare(cur.Gross, prev.Gross),
		OrdersCount:      CompareInt(cur.Orders, prev.Orders),
		UnitsSold:        CompareInt(cur.Units, prev.Units),
		AvgOrderValue:    Compare(cur.AvgOrderValue, prev.AvgOrderValue),
		AvgItemsPerOrder: Compare(cur.AvgItemsPerOrder, prev.AvgItemsPerOrder),

		RefundsCount:  CompareInt(curRefunds.Count, prevRefunds.Count),
		TotalRefunded: Compare(curRefunds.Total, prevRefunds.Total),
		NetRevenue:    Compare(NetRevenue(cur.Gross, curRefunds.Total), NetRevenue(prev.Gross, prevRefunds.Total)),
		RefundRate:    Compare(RefundRate(cur.Gross, curRefunds.Total), RefundRate(prev.Gross, prevRefunds.Total)),

		NewCustomers:  CompareInt(curNew, prevNew),
		CustomerSplit: SplitCustomers(curSales, first, windows.Current),
		TopCustomers:  TopCustomers(curSales, topCustomersLimit),

		RevenueByState:      RevenueByState(curSales),
		RevenueByPlatform:   RevenueByPlatform(curSales),
		RevenueBySource:     RevenueBySource(curSales),
		AddOnRevenue:        AddOnRevenue(curSales),
		OrdersByStatus:      OrdersByStatus(curAll),
		CarrierBreakdown:    CarrierBreakdown(curAll),
		CustomersByState:    CustomersByField(curSales, func(o *entity.Order) string { return o.DeliveryState }),
		CustomersByPlatform: CustomersByField(curSales, func(o *entity.Order) string { return o.Platform }),

		SalesSeries:  SeriesByGranularity(curSales, windows.Current, g),
		OrdersSeries: SeriesByGranularity(curAll, windows.Current, g),

		SkippedNoDate: CountMissingDate(orders),
	}
	return m, nil
}

func withoutRefunded(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsRefunded() {
			continue
		}
		out = append(out, o)
	}
	return out
}
