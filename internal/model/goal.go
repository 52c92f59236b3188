package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal tracks progress toward a target amount by a deadline.
type SavingsGoal struct {
	Deadline time.Time
	Name     string
	Target   decimal.Decimal
	Saved    decimal.Decimal
	ID       int64
}
