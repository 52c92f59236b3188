package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChange(t *testing.T) {
	tests := []struct {
		name          string
		wantArrow     Arrow
		wantSign      string
		delta         float64
		wantPercent   float64
		expenseMetric bool
		forceNegative bool
		wantBad       bool
	}{
		{
			name:        "zero delta is neutral",
			delta:       0,
			wantArrow:   ArrowUp,
			wantSign:    "",
			wantBad:     false,
			wantPercent: 0,
		},
		{
			name:          "zero delta on expense metric points down but is not bad",
			delta:         0,
			expenseMetric: true,
			wantArrow:     ArrowDown,
			wantSign:      "",
			wantBad:       false,
		},
		{
			name:        "income growth is good",
			delta:       12.5,
			wantArrow:   ArrowUp,
			wantSign:    "+",
			wantBad:     false,
			wantPercent: 12.5,
		},
		{
			name:        "income shrinking is bad",
			delta:       -3.4,
			wantArrow:   ArrowDown,
			wantSign:    "-",
			wantBad:     true,
			wantPercent: 3.4,
		},
		{
			name:          "expense growth is bad",
			delta:         8,
			expenseMetric: true,
			wantArrow:     ArrowDown,
			wantSign:      "+",
			wantBad:       true,
			wantPercent:   8,
		},
		{
			name:          "expense shrinking is good",
			delta:         -8,
			expenseMetric: true,
			wantArrow:     ArrowUp,
			wantSign:      "-",
			wantBad:       false,
			wantPercent:   8,
		},
		{
			name:          "override forces bad on positive delta",
			delta:         5,
			forceNegative: true,
			wantArrow:     ArrowDown,
			wantSign:      "+",
			wantBad:       true,
			wantPercent:   5,
		},
		{
			name:          "override forces bad on zero delta",
			delta:         0,
			forceNegative: true,
			wantArrow:     ArrowDown,
			wantSign:      "-",
			wantBad:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Change(tt.delta, tt.expenseMetric, tt.forceNegative)
			assert.Equal(t, tt.wantArrow, got.Arrow)
			assert.Equal(t, tt.wantSign, got.Sign)
			assert.Equal(t, tt.wantBad, got.Bad)
			assert.Equal(t, tt.wantPercent, got.Percent)
		})
	}
}

func TestChange_NonFiniteCoercesToZero(t *testing.T) {
	for _, delta := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := Change(delta, false, false)
		assert.Equal(t, ArrowUp, got.Arrow)
		assert.Equal(t, "", got.Sign)
		assert.False(t, got.Bad)
		assert.Equal(t, 0.0, got.Percent)
	}
}

func TestChangeIndicator_Color(t *testing.T) {
	assert.Equal(t, Red, Change(-1, false, false).Color())
	assert.Equal(t, Green, Change(1, false, false).Color())
}

func TestChangeIndicator_String(t *testing.T) {
	assert.Equal(t, "↑ +4.20%", Change(4.2, false, false).String())
	assert.Equal(t, "↓ -4.20%", Change(-4.2, false, false).String())
	assert.Equal(t, "↑ 0.00%", Change(0, false, false).String())
}
