package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryType distinguishes money coming in from money going out.
type CategoryType string

const (
	TypeIncome  CategoryType = "income"
	TypeExpense CategoryType = "expense"
)

// Transaction is a persisted transaction as the backend reports it.
// The amount is always non-negative; its direction is implied by the
// category type, never by the stored sign.
type Transaction struct {
	Date         time.Time
	CategoryName string
	CategoryType CategoryType
	Currency     string
	Description  string
	Amount       decimal.Decimal
	ID           int64
}

// Income reports whether the transaction adds to the balance.
func (t Transaction) Income() bool {
	return t.CategoryType == TypeIncome
}

// DisplayName returns the text shown as the transaction title.
func (t Transaction) DisplayName() string {
	if strings.TrimSpace(t.Description) != "" {
		return t.Description
	}
	return t.Category()
}

// Category returns the category name, defaulting to "Other" when the
// backend left it blank.
func (t Transaction) Category() string {
	if strings.TrimSpace(t.CategoryName) == "" {
		return "Other"
	}
	return t.CategoryName
}

// Category is a spending or income category owned by the backend.
type Category struct {
	Name string
	Type CategoryType
	ID   int64
}
