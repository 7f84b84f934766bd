package insights

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/aurumline/insights/internal/entity"
)

func TestComputeSalesTotals(t *testing.T) {
	a := testOrder("a", 100, day(1), entity.Delivered)
	a.Items = []entity.OrderItem{
		{Quantity: 2, UnitPrice: decimal.NewFromInt(40)},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(20)},
	}
	b := testOrder("b", 50, day(2), entity.Processing)

	totals := ComputeSalesTotals([]entity.Order{a, b})
	assert.Equal(t, "150", totals.Gross.String())
	assert.Equal(t, 2, totals.Orders)
	assert.Equal(t, 4, totals.Units)
	assert.Equal(t, "75", totals.AvgOrderValue.String())
	assert.Equal(t, "2", totals.AvgItemsPerOrder.String())
}

func TestComputeSalesTotalsEmptySet(t *testing.T) {
	totals := ComputeSalesTotals(nil)
	assert.Equal(t, 0, totals.Orders)
	assert.True(t, totals.Gross.IsZero())
	assert.True(t, totals.AvgOrderValue.IsZero(), "average must not divide by zero")
}

func TestPartialRefundAccounting(t *testing.T) {
	// total 10000 with a partial refund of 3000: contributes 10000 to gross
	// and 3000 to refunds, never 10000 to both or 13000 to anything
	o := refunded(testOrder("a", 10000, day(1), entity.Delivered), 3000, entity.RefundPartial)

	totals := ComputeSalesTotals([]entity.Order{o})
	assert.Equal(t, "10000", totals.Gross.String())

	rs := ComputeRefundStats([]entity.Order{o})
	assert.Equal(t, 1, rs.Count)
	assert.Equal(t, "3000", rs.Total.String())

	assert.Equal(t, "7000", NetRevenue(totals.Gross, rs.Total).String())
}

func TestFullRefundFallsBackToOrderTotal(t *testing.T) {
	o := testOrder("a", 500, day(1), entity.Refunded)
	o.RefundState = entity.RefundFull // no recorded amount

	rs := ComputeRefundStats([]entity.Order{o})
	assert.Equal(t, 1, rs.Count)
	assert.Equal(t, "500", rs.Total.String())
}

func TestRefundNeverExceedsOrderTotal(t *testing.T) {
	o := refunded(testOrder("a", 100, day(1), entity.Delivered), 250, entity.RefundPartial)
	rs := ComputeRefundStats([]entity.Order{o})
	assert.Equal(t, "100", rs.Total.String())
}

func TestNetRevenueFlooredAtZero(t *testing.T) {
	net := NetRevenue(decimal.NewFromInt(50), decimal.NewFromInt(80))
	assert.True(t, net.IsZero())
}

func TestRefundRateZeroGuard(t *testing.T) {
	assert.True(t, RefundRate(decimal.Zero, decimal.Zero).IsZero())
	assert.Equal(t, "25", RefundRate(decimal.NewFromInt(400), decimal.NewFromInt(100)).String())
}
