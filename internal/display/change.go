package display

import (
	"fmt"
	"math"
)

// Arrow is the direction glyph next to a percentage change.
type Arrow string

const (
	ArrowUp   Arrow = "up"
	ArrowDown Arrow = "down"
)

// ChangeIndicator is the rendered form of a period-over-period
// percentage delta.
type ChangeIndicator struct {
	Arrow   Arrow
	Sign    string
	Percent float64
	Bad     bool
}

// Change maps a percentage delta to its indicator. For an expense
// metric growth is bad; for everything else shrinkage is bad.
// forceNegative marks the value bad regardless of sign, used when the
// comparison baseline is degenerate (prior-period income was zero).
// Non-finite input is treated as zero.
func Change(delta float64, expenseMetric, forceNegative bool) ChangeIndicator {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}

	var bad bool
	if expenseMetric {
		bad = delta > 0
	} else {
		bad = delta < 0 || forceNegative
	}

	arrow := ArrowUp
	if bad {
		arrow = ArrowDown
	}

	sign := ""
	switch {
	case delta > 0:
		sign = "+"
	case delta < 0 || forceNegative:
		sign = "-"
	}

	// A true zero with no override is neutral: no sign, never bad,
	// and the arrow points the way that reads as "holding steady".
	if delta == 0 && !forceNegative {
		bad = false
		sign = ""
		if expenseMetric {
			arrow = ArrowDown
		} else {
			arrow = ArrowUp
		}
	}

	return ChangeIndicator{
		Arrow:   arrow,
		Bad:     bad,
		Sign:    sign,
		Percent: math.Abs(delta),
	}
}

// Color returns the indicator's color class.
func (c ChangeIndicator) Color() Color {
	if c.Bad {
		return Red
	}
	return Green
}

// String renders the indicator the way the summary tiles show it,
// e.g. "↑ +4.20%".
func (c ChangeIndicator) String() string {
	glyph := "↑"
	if c.Arrow == ArrowDown {
		glyph = "↓"
	}
	return fmt.Sprintf("%s %s%.2f%%", glyph, c.Sign, c.Percent)
}
