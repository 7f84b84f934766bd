package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumline/insights/internal/entity"
)

func TestNewCustomerNeedsFullHistoryScan(t *testing.T) {
	w := window(day(10), day(17))
	// alice ordered long before the window; her in-window order is returning
	history := []entity.Order{
		testOrder("Alice", 100, day(1), entity.Delivered),
		testOrder("Alice", 150, day(12), entity.Delivered),
		testOrder("Bob", 80, day(14), entity.Delivered),
	}

	first := FirstOrderDates(history)
	inWindow := FilterByWindow(history, w, false)

	assert.Equal(t, 1, NewCustomerCount(inWindow, first, w), "only bob is new")

	split := SplitCustomers(inWindow, first, w)
	assert.Equal(t, 1, split.New)
	assert.Equal(t, 1, split.Returning)
	assert.Equal(t, 50, split.ReturningPct)
}

func TestNewCustomerSingleOrderInsideWindow(t *testing.T) {
	w := window(day(10), day(17))
	history := []entity.Order{testOrder("Solo", 60, day(11), entity.Delivered)}

	first := FirstOrderDates(history)
	assert.Equal(t, 1, NewCustomerCount(history, first, w))
}

func TestCustomerKeyPrefersStableID(t *testing.T) {
	a := testOrder("Alice Smith", 10, day(1), entity.Delivered)
	a.CustomerID = "cust-1"
	b := testOrder("  alice smith ", 20, day(2), entity.Delivered)

	assert.Equal(t, "cust-1", a.CustomerKey())
	assert.Equal(t, "alice smith", b.CustomerKey())
}

func TestSplitCustomersEmptyWindow(t *testing.T) {
	split := SplitCustomers(nil, FirstOrderDates(nil), window(day(1), day(2)))
	assert.Zero(t, split.ReturningPct)
	assert.Zero(t, split.New)
	assert.Zero(t, split.Returning)
}

func TestTopCustomersRankedBySpend(t *testing.T) {
	orders := []entity.Order{
		testOrder("Alice", 100, day(1), entity.Delivered),
		testOrder("Bob", 300, day(2), entity.Delivered),
		testOrder("Alice", 250, day(3), entity.Delivered),
		testOrder("Carol", 50, day(4), entity.Delivered),
	}

	top := TopCustomers(orders, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Alice", top[0].Label)
	assert.Equal(t, "350", top[0].Value.String())
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, "Bob", top[1].Label)

	// shares of the full 700 spent, not of the truncated top-2
	assert.Equal(t, 50, top[0].Percentage)
	assert.Equal(t, 43, top[1].Percentage)
}

func TestCustomersByFieldCountsDistinctCustomers(t *testing.T) {
	a1 := testOrder("Alice", 100, day(1), entity.Delivered)
	a1.DeliveryState = "Lagos"
	a2 := testOrder("Alice", 50, day(2), entity.Delivered)
	a2.DeliveryState = "Lagos"
	b := testOrder("Bob", 75, day(3), entity.Delivered)
	// bob has no delivery state: grouped under Unknown, not dropped

	entries := CustomersByField([]entity.Order{a1, a2, b}, func(o *entity.Order) string { return o.DeliveryState })
	require.Len(t, entries, 2)
	assert.Equal(t, "Lagos", entries[0].Label)
	assert.Equal(t, 1, entries[0].Count, "two orders, one distinct customer")
	assert.Equal(t, "Unknown", entries[1].Label)
}
