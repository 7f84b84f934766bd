package insights

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

// unknownLabel buckets records whose grouping field is missing. An explicit
// bucket keeps two breakdowns of the same set summing to the same total.
const unknownLabel = "Unknown"

// roundPct is the one integer-percentage rule every breakdown shares.
func roundPct(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(part.Div(total).Mul(hundred).Round(0).IntPart())
}

func sortBreakdown(entries []entity.BreakdownEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Value.Equal(entries[j].Value) {
			return entries[i].Value.GreaterThan(entries[j].Value)
		}
		return entries[i].Label < entries[j].Label
	})
}

// revenueBreakdown groups orders by a label, summing count and revenue per
// group. Percentages are shares of the breakdown's own revenue total; groups
// never form around zero entries because every member order contributes.
func revenueBreakdown(orders []entity.Order, labelOf func(*entity.Order) string) []entity.BreakdownEntry {
	groups := make(map[string]*entity.BreakdownEntry)
	total := decimal.Zero
	for i := range orders {
		o := &orders[i]
		label := labelOf(o)
		if label == "" {
			label = unknownLabel
		}
		e, ok := groups[label]
		if !ok {
			e = &entity.BreakdownEntry{Label: label, Value: decimal.Zero}
			groups[label] = e
		}
		e.Value = e.Value.Add(o.TotalAmount)
		e.Count++
		total = total.Add(o.TotalAmount)
	}
	entries := make([]entity.BreakdownEntry, 0, len(groups))
	for _, e := range groups {
		e.Percentage = roundPct(e.Value, total)
		entries = append(entries, *e)
	}
	sortBreakdown(entries)
	return entries
}

// RevenueByState breaks revenue down by delivery destination.
func RevenueByState(orders []entity.Order) []entity.BreakdownEntry {
	return revenueBreakdown(orders, func(o *entity.Order) string { return o.DeliveryState })
}

// RevenueByPlatform breaks revenue down by sales channel.
func RevenueByPlatform(orders []entity.Order) []entity.BreakdownEntry {
	return revenueBreakdown(orders, func(o *entity.Order) string { return o.Platform })
}

// OrdersByStatus counts orders per fulfillment status. Percentages are count
// shares; the input should include refunded orders so they stay visible.
func OrdersByStatus(orders []entity.Order) []entity.BreakdownEntry {
	groups := make(map[string]*entity.BreakdownEntry)
	for i := range orders {
		o := &orders[i]
		label := o.NormalizedStatus().String()
		e, ok := groups[label]
		if !ok {
			e = &entity.BreakdownEntry{Label: label, Value: decimal.Zero}
			groups[label] = e
		}
		e.Value = e.Value.Add(o.TotalAmount)
		e.Count++
	}
	entries := make([]entity.BreakdownEntry, 0, len(groups))
	for _, e := range groups {
		e.Percentage = roundPct(decimal.NewFromInt(int64(e.Count)), decimal.NewFromInt(int64(len(orders))))
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// CarrierBreakdown groups orders by logistics carrier and attaches the
// on-time rate: the share of the carrier's orders currently Delivered.
// Known limitation: this is a current-status approximation, there is no
// promised-vs-actual timestamp comparison in the data.
func CarrierBreakdown(orders []entity.Order) []entity.CarrierMetric {
	type group struct {
		entry     entity.BreakdownEntry
		delivered int
	}
	groups := make(map[string]*group)
	total := decimal.Zero
	for i := range orders {
		o := &orders[i]
		label := o.Carrier
		if label == "" {
			label = unknownLabel
		}
		g, ok := groups[label]
		if !ok {
			g = &group{entry: entity.BreakdownEntry{Label: label, Value: decimal.Zero}}
			groups[label] = g
		}
		g.entry.Value = g.entry.Value.Add(o.TotalAmount)
		g.entry.Count++
		if o.NormalizedStatus() == entity.Delivered {
			g.delivered++
		}
		total = total.Add(o.TotalAmount)
	}
	metrics := make([]entity.CarrierMetric, 0, len(groups))
	for _, g := range groups {
		g.entry.Percentage = roundPct(g.entry.Value, total)
		m := entity.CarrierMetric{BreakdownEntry: g.entry}
		m.OnTimePct = roundPct(decimal.NewFromInt(int64(g.delivered)), decimal.NewFromInt(int64(g.entry.Count)))
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool {
		if !metrics[i].Value.Equal(metrics[j].Value) {
			return metrics[i].Value.GreaterThan(metrics[j].Value)
		}
		return metrics[i].Label < metrics[j].Label
	})
	return metrics
}

// RevenueBySource splits revenue into items, delivery fees and add-on
// charges. Zero sources are omitted.
func RevenueBySource(orders []entity.Order) []entity.BreakdownEntry {
	items, delivery, addOns := decimal.Zero, decimal.Zero, decimal.Zero
	itemOrders, deliveryOrders, addOnOrders := 0, 0, 0
	for _, o := range orders {
		if o.Subtotal.GreaterThan(decimal.Zero) {
			items = items.Add(o.Subtotal)
			itemOrders++
		}
		if o.DeliveryFee.GreaterThan(decimal.Zero) {
			delivery = delivery.Add(o.DeliveryFee)
			deliveryOrders++
		}
		if a := o.AddOnTotal(); a.GreaterThan(decimal.Zero) {
			addOns = addOns.Add(a)
			addOnOrders++
		}
	}
	total := items.Add(delivery).Add(addOns)
	var entries []entity.BreakdownEntry
	for _, src := range []struct {
		label string
		value decimal.Decimal
		count int
	}{
		{"Items", items, itemOrders},
		{"Delivery", delivery, deliveryOrders},
		{"Add-ons", addOns, addOnOrders},
	} {
		if src.value.IsZero() {
			continue
		}
		entries = append(entries, entity.BreakdownEntry{
			Label:      src.label,
			Value:      src.value,
			Count:      src.count,
			Percentage: roundPct(src.value, total),
		})
	}
	sortBreakdown(entries)
	return entries
}

// AddOnRevenue breaks add-on revenue down by charge label.
func AddOnRevenue(orders []entity.Order) []entity.BreakdownEntry {
	groups := make(map[string]*entity.BreakdownEntry)
	total := decimal.Zero
	for _, o := range orders {
		for _, a := range o.AddOns {
			label := a.Label
			if label == "" {
				label = unknownLabel
			}
			e, ok := groups[label]
			if !ok {
				e = &entity.BreakdownEntry{Label: label, Value: decimal.Zero}
				groups[label] = e
			}
			e.Value = e.Value.Add(a.Price)
			e.Count++
			total = total.Add(a.Price)
		}
	}
	entries := make([]entity.BreakdownEntry, 0, len(groups))
	for _, e := range groups {
		e.Percentage = roundPct(e.Value, total)
		entries = append(entries, *e)
	}
	sortBreakdown(entries)
	return entries
}
