package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeRange is a half-open window [From, To).
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the half-open window.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.From) && t.Before(tr.To)
}

// Days is the window length in whole days, never less than 1 so ratios over
// the window stay defined.
func (tr TimeRange) Days() int {
	d := int(tr.To.Sub(tr.From).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}

// MetricsGranularity controls time bucket size for time series (day, week, month).
type MetricsGranularity int

const (
	MetricsGranularityDay   MetricsGranularity = 1
	MetricsGranularityWeek  MetricsGranularity = 2
	MetricsGranularityMonth MetricsGranularity = 3
)

// MetricWithComparison pairs a current-window KPI with its previous-window
// counterpart and the signed percentage change between them.
type MetricWithComparison struct {
	Value        decimal.Decimal `json:"value"`
	CompareValue decimal.Decimal `json:"compare_value"`
	ChangePct    float64         `json:"change_pct"`
}

// TimeSeriesPoint is one chart bucket: the bucket start date, a monetary sum
// and an order count.
type TimeSeriesPoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"`
}

// BreakdownEntry is one group of a breakdown. Percentage is the group's
// integer share of the breakdown's own total, not of grand revenue.
type BreakdownEntry struct {
	Label      string          `json:"label"`
	Value      decimal.Decimal `json:"value"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// CarrierMetric extends a carrier breakdown entry with the on-time rate:
// the share of that carrier's orders currently in Delivered status. This is
// a status approximation, not a promised-vs-actual SLA check.
type CarrierMetric struct {
	BreakdownEntry
	OnTimePct int `json:"on_time_pct"`
}

// CustomerMetric is one customer in a spend ranking. Percentage is the
// customer's share of the ranked set's total spend, not of the top-N slice.
type CustomerMetric struct {
	Label      string          `json:"label"`
	CustomerID string          `json:"customer_id,omitempty"`
	Value      decimal.Decimal `json:"value"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// CustomerSplit reports the returning-vs-new classification of a window.
type CustomerSplit struct {
	New          int `json:"new"`
	Returning    int `json:"returning"`
	ReturningPct int `json:"returning_pct"`
}

// BusinessMetrics contains all computed metrics for a reporting period.
type BusinessMetrics struct {
	Period         TimeRange          `json:"period"`
	PreviousPeriod TimeRange          `json:"previous_period"`
	Granularity    MetricsGranularity `json:"granularity"`

	// Core sales
	TotalSales       MetricWithComparison `json:"total_sales"`
	OrdersCount      MetricWithComparison `json:"orders_count"`
	UnitsSold        MetricWithComparison `json:"units_sold"`
	AvgOrderValue    MetricWithComparison `json:"avg_order_value"`
	AvgItemsPerOrder MetricWithComparison `json:"avg_items_per_order"`

	// Refunds
	RefundsCount  MetricWithComparison `json:"refunds_count"`
	TotalRefunded MetricWithComparison `json:"total_refunded"`
	NetRevenue    MetricWithComparison `json:"net_revenue"`
	RefundRate    MetricWithComparison `json:"refund_rate"`

	// Customers
	NewCustomers  MetricWithComparison `json:"new_customers"`
	CustomerSplit CustomerSplit        `json:"customer_split"`
	TopCustomers  []CustomerMetric     `json:"top_customers"`

	// Breakdowns
	RevenueByState      []BreakdownEntry `json:"revenue_by_state"`
	RevenueByPlatform   []BreakdownEntry `json:"revenue_by_platform"`
	RevenueBySource     []BreakdownEntry `json:"revenue_by_source"`
	AddOnRevenue        []BreakdownEntry `json:"add_on_revenue"`
	OrdersByStatus      []BreakdownEntry `json:"orders_by_status"`
	CarrierBreakdown    []CarrierMetric  `json:"carrier_breakdown"`
	CustomersByState    []BreakdownEntry `json:"customers_by_state"`
	CustomersByPlatform []BreakdownEntry `json:"customers_by_platform"`

	// Time series for charts, gap-filled over the full window
	SalesSeries  []TimeSeriesPoint `json:"sales_series"`
	OrdersSeries []TimeSeriesPoint `json:"orders_series"`

	// Orders dropped from windowed views for lacking a usable date. The
	// engine does no logging itself; callers surface this count.
	SkippedNoDate int `json:"skipped_no_date,omitempty"`
}
