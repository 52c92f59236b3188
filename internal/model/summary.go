package model

import "github.com/shopspring/decimal"

// FinancialSummary is the aggregate metrics block backing the summary
// tiles and the financial health panel. All values are computed
// server-side and rendered verbatim apart from presentation mapping.
type FinancialSummary struct {
	HealthLabel     string
	TotalBalance    decimal.Decimal
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	Savings         decimal.Decimal
	BalanceChange   float64
	IncomeChange    float64
	ExpenseChange   float64
	SavingsChange   float64
	SavingsRate     float64
	DebtRatio       float64
	HealthScore     float64
	SavingsProgress float64
}

// ExpenseOnly reports the degenerate baseline where the period had
// expenses but no income at all. Balance and savings changes are
// forced negative in that case regardless of their computed sign.
func (s FinancialSummary) ExpenseOnly() bool {
	return s.MonthlyIncome.IsZero() && s.MonthlyExpenses.Sign() > 0
}

// SpendingAnalysis is the income-vs-expense bar series for a period.
type SpendingAnalysis struct {
	Months   []string
	Income   []float64
	Expenses []float64
}

// Profile is the signed-in user's public profile.
type Profile struct {
	Username string
	Avatar   string
}

// Notification is a user notification row.
type Notification struct {
	Title     string
	Message   string
	Timestamp string
}
