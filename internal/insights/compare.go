package insights

import (
	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

// PercentChange is the one change rule every KPI uses. Previous zero never
// divides: both zero yields 0, growth from zero yields +100. The result is
// unrounded; rounding is a presentation concern.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	f, _ := current.Sub(previous).Div(previous).Mul(hundred).Float64()
	return f
}

// Compare pairs a current-window value with its previous-window counterpart.
func Compare(current, previous decimal.Decimal) entity.MetricWithComparison {
	return entity.MetricWithComparison{
		Value:        current,
		CompareValue: previous,
		ChangePct:    PercentChange(current, previous),
	}
}

// CompareInt is Compare for count-valued KPIs.
func CompareInt(current, previous int) entity.MetricWithComparison {
	return Compare(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
