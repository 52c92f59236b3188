package model

import "github.com/shopspring/decimal"

// InsightType classifies an AI insight card.
type InsightType string

const (
	InsightAnomaly  InsightType = "Anomaly"
	InsightForecast InsightType = "Forecast"
	InsightBudget   InsightType = "Budget"
	InsightGeneral  InsightType = "General"
)

// Insight is a server-generated AI insight. It is read-only here; all
// scoring happens on the backend.
type Insight struct {
	Type           InsightType
	Category       string
	Title          string
	Description    string
	Details        string
	SuggestedLimit decimal.Decimal
}

// Warning reports whether the insight should render in the alert style.
func (i Insight) Warning() bool {
	return i.Type == InsightAnomaly || i.Type == InsightBudget
}

// BudgetInsight is a per-category forecast row from the budget
// insights endpoint.
type BudgetInsight struct {
	Category              string
	SavingsRecommendation string
	AverageSpending       decimal.Decimal
	ForecastedSpending    decimal.Decimal
	SuggestedLimit        decimal.Decimal
}

// Overspending reports whether the forecast exceeds the running
// average, which is what makes the row a warning.
func (b BudgetInsight) Overspending() bool {
	return b.ForecastedSpending.GreaterThan(b.AverageSpending)
}

// RecommendedLimit returns the limit to offer when the user accepts
// the suggestion, falling back to the forecast when the backend sent
// no explicit suggestion.
func (b BudgetInsight) RecommendedLimit() decimal.Decimal {
	if b.SuggestedLimit.Sign() > 0 {
		return b.SuggestedLimit
	}
	return b.ForecastedSpending
}
