package display

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUtilizationPercent(t *testing.T) {
	tests := []struct {
		name  string
		spent string
		limit string
		want  float64
	}{
		{name: "half used", spent: "50", limit: "100", want: 50},
		{name: "overspent clamps to 100", spent: "150", limit: "100", want: 100},
		{name: "zero limit treated as one", spent: "0", limit: "0", want: 0},
		{name: "negative limit treated as one", spent: "2", limit: "-10", want: 100},
		{name: "negative spend clamps to zero", spent: "-5", limit: "100", want: 0},
		{name: "exact limit", spent: "100", limit: "100", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UtilizationPercent(d(tt.spent), d(tt.limit))
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestUtilizationColor_Boundaries(t *testing.T) {
	tests := []struct {
		want Color
		pct  float64
	}{
		{pct: 0, want: Green},
		{pct: 50, want: Green},
		{pct: 51, want: Blue},
		{pct: 75, want: Blue},
		{pct: 76, want: Yellow},
		{pct: 90, want: Yellow}, // exactly 90 is not red
		{pct: 90.5, want: Red},
		{pct: 91, want: Red},
		{pct: 100, want: Red},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UtilizationColor(tt.pct), "pct=%v", tt.pct)
	}
}
