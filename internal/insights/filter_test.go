package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumline/insights/internal/entity"
)

func TestFilterByWindowRefundExclusion(t *testing.T) {
	w := window(day(1), day(8))
	orders := []entity.Order{
		testOrder("alice", 100, day(2), entity.Delivered),
		testOrder("bob", 50, day(3), entity.Refunded),
		testOrder("carol", 75, day(9), entity.Delivered), // outside
	}

	sales := FilterByWindow(orders, w, false)
	require.Len(t, sales, 1)
	assert.Equal(t, "alice", sales[0].CustomerName)

	all := FilterByWindow(orders, w, true)
	assert.Len(t, all, 2)
	for _, o := range FilterByWindow(orders, w, false) {
		assert.NotEqual(t, entity.Refunded, o.NormalizedStatus())
	}
}

func TestFilterByWindowHalfOpenBoundary(t *testing.T) {
	w := window(day(1), day(8))
	next := window(day(8), day(15))
	atEnd := testOrder("edge", 10, day(8), entity.Delivered)
	orders := []entity.Order{atEnd}

	assert.Empty(t, FilterByWindow(orders, w, true))
	assert.Len(t, FilterByWindow(orders, next, true), 1)

	atStart := testOrder("start", 10, day(1), entity.Delivered)
	assert.Len(t, FilterByWindow([]entity.Order{atStart}, w, true), 1)
}

func TestFilterByWindowOrderDatePrecedence(t *testing.T) {
	w := window(day(1), day(8))
	orderDate := day(3)
	o := testOrder("dana", 40, day(20), entity.Delivered) // created outside
	o.OrderDate = &orderDate

	got := FilterByWindow([]entity.Order{o}, w, true)
	assert.Len(t, got, 1)
}

func TestFilterByWindowSkipsUndatedOrders(t *testing.T) {
	w := window(day(1), day(8))
	undated := entity.Order{CustomerName: "ghost", Status: entity.Delivered}

	assert.Empty(t, FilterByWindow([]entity.Order{undated}, w, true))
	assert.Equal(t, 1, CountMissingDate([]entity.Order{undated, testOrder("x", 1, day(2), entity.Delivered)}))
}

func TestFilterScenarioSevenDayWindow(t *testing.T) {
	// orders: 100@day1 delivered, 50@day1 refunded(50), 200@day8 delivered;
	// window of seven days ending day 7
	w := window(day(1), day(8))
	orders := []entity.Order{
		testOrder("a", 100, day(1), entity.Delivered),
		refunded(testOrder("b", 50, day(1), entity.Refunded), 50, entity.RefundFull),
		testOrder("c", 200, day(8), entity.Delivered),
	}

	sales := FilterByWindow(orders, w, false)
	totals := ComputeSalesTotals(sales)
	assert.Equal(t, "100", totals.Gross.String())
	assert.Equal(t, 1, totals.Orders)

	rs := ComputeRefundStats(sales)
	assert.Equal(t, 0, rs.Count)

	all := FilterByWindow(orders, w, true)
	rsAll := ComputeRefundStats(all)
	assert.Equal(t, 1, rsAll.Count)
	assert.Equal(t, "50", rsAll.Total.String())

	for _, o := range all {
		d, ok := o.EffectiveDate()
		require.True(t, ok)
		assert.True(t, d.Before(day(8)), "day8 order must stay out of the window")
	}
}
