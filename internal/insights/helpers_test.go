package insights

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

func testOrder(name string, total float64, date time.Time, status entity.OrderStatusName) entity.Order {
	return entity.Order{
		ID:           uuid.New(),
		CustomerName: name,
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), VariantID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromFloat(total)},
		},
		Subtotal:    decimal.NewFromFloat(total),
		TotalAmount: decimal.NewFromFloat(total),
		CreatedAt:   date,
		Status:      status,
		RefundState: entity.RefundNone,
	}
}

func refunded(o entity.Order, amount float64, state entity.RefundState) entity.Order {
	o.RefundState = state
	o.RefundedAmount = decimal.NewFromFloat(amount)
	return o
}

func window(from, to time.Time) entity.TimeRange {
	return entity.TimeRange{From: from, To: to}
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}
