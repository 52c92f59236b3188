package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a per-category monthly spending limit with the amount the
// backend has counted against it so far.
type Budget struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	ID       int64
}

// Bill is an upcoming recurring payment.
type Bill struct {
	NextPaymentDate time.Time
	Name            string
	Category        string
	Frequency       string
	Amount          decimal.Decimal
	DaysRemaining   int
	ID              int64
}
