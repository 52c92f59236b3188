package api

import (
	"context"
	"net/url"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
)

// FinancialSummary fetches the aggregate metrics behind the summary
// tiles and health panel.
func (c *Client) FinancialSummary(ctx context.Context) (model.FinancialSummary, error) {
	var record struct {
		FinancialHealth      string          `json:"financial_health"`
		TotalBalance         decimal.Decimal `json:"total_balance"`
		MonthlyIncome        decimal.Decimal `json:"monthly_income"`
		MonthlyExpenses      decimal.Decimal `json:"monthly_expenses"`
		Savings              decimal.Decimal `json:"savings"`
		BalanceChange        float64         `json:"balance_change"`
		IncomeChange         float64         `json:"income_change"`
		ExpenseChange        float64         `json:"expense_change"`
		SavingsChange        float64         `json:"savings_change"`
		SavingsRate          float64         `json:"savings_rate"`
		DebtRatio            float64         `json:"debt_ratio"`
		FinancialHealthScore float64         `json:"financial_health_score"`
		SavingsProgress      float64         `json:"savings_progress"`
	}
	if err := c.get(ctx, "/frontend/financial-summary/", &record); err != nil {
		return model.FinancialSummary{}, err
	}

	return model.FinancialSummary{
		TotalBalance:    record.TotalBalance,
		MonthlyIncome:   record.MonthlyIncome,
		MonthlyExpenses: record.MonthlyExpenses.Abs(),
		Savings:         record.Savings,
		BalanceChange:   record.BalanceChange,
		IncomeChange:    record.IncomeChange,
		ExpenseChange:   record.ExpenseChange,
		SavingsChange:   record.SavingsChange,
		SavingsRate:     record.SavingsRate,
		DebtRatio:       record.DebtRatio,
		HealthScore:     record.FinancialHealthScore,
		HealthLabel:     record.FinancialHealth,
		SavingsProgress: record.SavingsProgress,
	}, nil
}

// SpendingAnalysis fetches the income-vs-expense bar series for a
// period ("month", "quarter", "year").
func (c *Client) SpendingAnalysis(ctx context.Context, period string) (model.SpendingAnalysis, error) {
	var record struct {
		BarMonths   []string  `json:"bar_months"`
		BarIncome   []float64 `json:"bar_income"`
		BarExpenses []float64 `json:"bar_expenses"`
	}
	path := "/frontend/spending-analysis/?period=" + url.QueryEscape(period)
	if err := c.get(ctx, path, &record); err != nil {
		return model.SpendingAnalysis{}, err
	}

	return model.SpendingAnalysis{
		Months:   record.BarMonths,
		Income:   record.BarIncome,
		Expenses: record.BarExpenses,
	}, nil
}
