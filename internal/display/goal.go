package display

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// GoalProgress is the rendered state of a savings goal.
type GoalProgress struct {
	Status   string
	Color    Color
	Percent  float64
	DaysLeft int
}

// Goal derives a savings goal's progress bar and status line.
// Completion wins over everything: a goal at 100% is "Completed" even
// if its deadline has long passed. A target of zero or less is
// treated as 1 so the percentage is always defined.
func Goal(saved, target decimal.Decimal, deadline, now time.Time) GoalProgress {
	if target.Sign() <= 0 {
		target = one
	}
	pct, _ := saved.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	daysLeft := int(math.Ceil(deadline.Sub(now).Hours() / 24))

	switch {
	case pct >= 100:
		return GoalProgress{Status: "Completed", Color: Green, Percent: pct, DaysLeft: daysLeft}
	case daysLeft < 0:
		return GoalProgress{Status: "Overdue", Color: Red, Percent: pct, DaysLeft: daysLeft}
	default:
		return GoalProgress{
			Status:   fmt.Sprintf("%d days left", daysLeft),
			Color:    Blue,
			Percent:  pct,
			DaysLeft: daysLeft,
		}
	}
}
