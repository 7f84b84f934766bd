package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a read-only snapshot of a customer order as supplied by the
// storage layer. The engine never mutates it.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	CustomerName   string          `json:"customer_name"`
	CustomerID     string          `json:"customer_id,omitempty"`
	Items          []OrderItem     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	AddOns         []AddOnCharge   `json:"add_ons,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	OrderDate      *time.Time      `json:"order_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Status         OrderStatusName `json:"status"`
	RefundState    RefundState     `json:"refund_state"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
	Platform       string          `json:"platform"`
	DeliveryState  string          `json:"delivery_state"`
	Carrier        string          `json:"carrier"`
}

// EffectiveDate resolves the single date every windowed computation uses:
// the explicit order date when present, the created timestamp otherwise.
// ok is false when neither is usable; such orders are skipped from
// date-bucketed views.
func (o *Order) EffectiveDate() (time.Time, bool) {
	if o.OrderDate != nil && !o.OrderDate.IsZero() {
		return *o.OrderDate, true
	}
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt, true
	}
	return time.Time{}, false
}

// CustomerKey is the identity every cohort computation groups by: the stable
// customer id when present, otherwise the case-folded trimmed name.
func (o *Order) CustomerKey() string {
	if o.CustomerID != "" {
		return o.CustomerID
	}
	return strings.ToLower(strings.TrimSpace(o.CustomerName))
}

// UnitCount is the total quantity across all line items.
func (o *Order) UnitCount() int {
	units := 0
	for _, it := range o.Items {
		units += it.Quantity
	}
	return units
}

// RefundedPortion is what the order contributes to refund totals: partial
// refunds only their refunded amount, full refunds the recorded amount or,
// when none was recorded, the order total. Never exceeds the order total.
func (o *Order) RefundedPortion() decimal.Decimal {
	switch o.RefundState {
	case RefundPartial, RefundFull:
		amount := o.RefundedAmount
		if amount.IsZero() && o.RefundState == RefundFull {
			amount = o.TotalAmount
		}
		if amount.GreaterThan(o.TotalAmount) {
			return o.TotalAmount
		}
		return amount
	default:
		return decimal.Zero
	}
}

// AddOnTotal sums the order's add-on and service charges.
func (o *Order) AddOnTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range o.AddOns {
		total = total.Add(a.Price)
	}
	return total
}

// OrderItem is one ordered line: a product variant and its quantity.
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	VariantID uuid.UUID       `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// AddOnCharge is a labeled service charge attached to the order, not to a
// line item (engraving, gift wrap, resizing).
type AddOnCharge struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// OrderStatusName is the custom type to enforce enum-like behavior
type OrderStatusName string

func (osn OrderStatusName) String() string {
	return string(osn)
}

const (
	Processing     OrderStatusName = "processing"
	LabProcessing  OrderStatusName = "lab_processing"
	QualityCheck   OrderStatusName = "quality_check"
	ReadyForPickup OrderStatusName = "ready_for_pickup"
	Delivered      OrderStatusName = "delivered"
	Refunded       OrderStatusName = "refunded"
	StatusUnknown  OrderStatusName = "unknown"
)

// ValidOrderStatusNames is a set of valid order status names
var ValidOrderStatusNames = map[OrderStatusName]bool{
	Processing:     true,
	LabProcessing:  true,
	QualityCheck:   true,
	ReadyForPickup: true,
	Delivered:      true,
	Refunded:       true,
}

// NormalizedStatus maps anything outside the closed status set to
// StatusUnknown so one mistyped label can never split a bucket in two.
func (o *Order) NormalizedStatus() OrderStatusName {
	s := OrderStatusName(strings.ToLower(strings.TrimSpace(string(o.Status))))
	if ValidOrderStatusNames[s] {
		return s
	}
	return StatusUnknown
}

// IsRefunded reports whether the order is excluded from revenue metrics.
func (o *Order) IsRefunded() bool {
	return o.NormalizedStatus() == Refunded
}

// RefundState tracks how much of the order was refunded.
type RefundState string

const (
	RefundNone    RefundState = "none"
	RefundPartial RefundState = "partial"
	RefundFull    RefundState = "full"
)
