package insights

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumline/insights/internal/entity"
)

func platformOrder(platform string, total float64) entity.Order {
	o := testOrder("x", total, day(1), entity.Delivered)
	o.Platform = platform
	return o
}

func TestRevenueByPlatformPercentages(t *testing.T) {
	orders := []entity.Order{
		platformOrder("instagram", 300),
		platformOrder("instagram", 450),
		platformOrder("whatsapp", 250),
	}

	entries := RevenueByPlatform(orders)
	require.Len(t, entries, 2)
	assert.Equal(t, "instagram", entries[0].Label)
	assert.Equal(t, "750", entries[0].Value.String())
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, 75, entries[0].Percentage, "share of the breakdown's own total")
	assert.Equal(t, 25, entries[1].Percentage)
}

func TestBreakdownUnknownBucket(t *testing.T) {
	orders := []entity.Order{
		platformOrder("", 100),
		platformOrder("walk-in", 100),
	}

	entries := RevenueByPlatform(orders)
	require.Len(t, entries, 2)
	labels := []string{entries[0].Label, entries[1].Label}
	assert.Contains(t, labels, "Unknown")
}

func TestBreakdownsOfSameSetSumToSameTotal(t *testing.T) {
	a := platformOrder("instagram", 120)
	a.DeliveryState = "Abuja"
	b := platformOrder("", 80)
	b.DeliveryState = ""

	orders := []entity.Order{a, b}
	sumOf := func(entries []entity.BreakdownEntry) decimal.Decimal {
		s := decimal.Zero
		for _, e := range entries {
			s = s.Add(e.Value)
		}
		return s
	}

	byPlatform := sumOf(RevenueByPlatform(orders))
	byState := sumOf(RevenueByState(orders))
	assert.True(t, byPlatform.Equal(byState))
	assert.Equal(t, "200", byPlatform.String())
}

func TestOrdersByStatusIncludesRefunded(t *testing.T) {
	orders := []entity.Order{
		testOrder("a", 100, day(1), entity.Delivered),
		testOrder("b", 50, day(1), entity.Refunded),
		testOrder("c", 50, day(1), entity.Delivered),
		testOrder("d", 50, day(1), "Mystery Status"),
	}

	entries := OrdersByStatus(orders)
	byLabel := map[string]entity.BreakdownEntry{}
	for _, e := range entries {
		byLabel[e.Label] = e
	}
	assert.Equal(t, 2, byLabel["delivered"].Count)
	assert.Equal(t, 1, byLabel["refunded"].Count)
	assert.Equal(t, 1, byLabel["unknown"].Count, "unparsable status lands in the unknown bucket")
	assert.Equal(t, 50, byLabel["delivered"].Percentage)
}

func TestCarrierBreakdownOnTimeRate(t *testing.T) {
	mk := func(carrier string, status entity.OrderStatusName) entity.Order {
		o := testOrder("x", 100, day(1), status)
		o.Carrier = carrier
		return o
	}
	orders := []entity.Order{
		mk("GIG", entity.Delivered),
		mk("GIG", entity.Delivered),
		mk("GIG", entity.Processing),
		mk("GIG", entity.ReadyForPickup),
		mk("DHL", entity.Processing),
	}

	metrics := CarrierBreakdown(orders)
	require.Len(t, metrics, 2)
	assert.Equal(t, "GIG", metrics[0].Label)
	assert.Equal(t, 4, metrics[0].Count)
	assert.Equal(t, 50, metrics[0].OnTimePct, "2 of 4 currently delivered")
	assert.Equal(t, 0, metrics[1].OnTimePct)
}

func TestRevenueBySourceOmitsZeroGroups(t *testing.T) {
	o := testOrder("a", 130, day(1), entity.Delivered)
	o.Subtotal = decimal.NewFromInt(100)
	o.DeliveryFee = decimal.NewFromInt(20)
	o.AddOns = []entity.AddOnCharge{{Label: "Engraving", Price: decimal.NewFromInt(10)}}

	plain := testOrder("b", 50, day(1), entity.Delivered)
	plain.Subtotal = decimal.NewFromInt(50)

	entries := RevenueBySource([]entity.Order{o, plain})
	require.Len(t, entries, 3)
	assert.Equal(t, "Items", entries[0].Label)
	assert.Equal(t, "150", entries[0].Value.String())

	noFees := RevenueBySource([]entity.Order{plain})
	require.Len(t, noFees, 1, "zero sources are omitted")
	assert.Equal(t, "Items", noFees[0].Label)
	assert.Equal(t, 100, noFees[0].Percentage)
}

func TestAddOnRevenueByLabel(t *testing.T) {
	o1 := testOrder("a", 100, day(1), entity.Delivered)
	o1.AddOns = []entity.AddOnCharge{
		{Label: "Engraving", Price: decimal.NewFromInt(30)},
		{Label: "Gift Wrap", Price: decimal.NewFromInt(10)},
	}
	o2 := testOrder("b", 100, day(2), entity.Delivered)
	o2.AddOns = []entity.AddOnCharge{{Label: "Engraving", Price: decimal.NewFromInt(20)}}

	entries := AddOnRevenue([]entity.Order{o1, o2})
	require.Len(t, entries, 2)
	assert.Equal(t, "Engraving", entries[0].Label)
	assert.Equal(t, "50", entries[0].Value.String())
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, 83, entries[0].Percentage)
}
