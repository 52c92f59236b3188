package display

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// UtilizationPercent returns spent as a percentage of limit, clamped
// to [0,100] for display. A limit of zero or less is treated as 1 so
// the division is always defined.
func UtilizationPercent(spent, limit decimal.Decimal) float64 {
	if limit.Sign() <= 0 {
		limit = one
	}
	pct, _ := spent.Div(limit).Mul(decimal.NewFromInt(100)).Float64()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// UtilizationColor maps a utilization percentage to its bar color.
// Thresholds are exclusive on the lower side: exactly 90 is yellow,
// 91 is red.
func UtilizationColor(pct float64) Color {
	switch {
	case pct > 90:
		return Red
	case pct > 75:
		return Yellow
	case pct > 50:
		return Blue
	default:
		return Green
	}
}
