// Package dashboard turns backend records into render-ready view
// models. Each section follows one contract: fetch, map through the
// display rules, hand the result to a renderer. Sections are
// independent; one endpoint being down never blocks the others.
package dashboard

import (
	"fmt"
	"time"

	"github.com/finsight-cli/finsight/internal/display"
	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
)

// FeedLimit caps the transaction feed in the dashboard view. The full
// list view is unbounded (the backend paginates it).
const FeedLimit = 6

// Tile is one summary tile: a currency amount with its
// period-over-period change indicator.
type Tile struct {
	Label  string
	Amount decimal.Decimal
	Change display.ChangeIndicator
}

// SummaryView backs the summary tiles and the financial health panel.
type SummaryView struct {
	HealthLabel string
	HealthColor display.Color
	Tiles       []Tile
	SavingsRate float64
	DebtRatio   float64
	HealthScore float64
}

// BuildSummary maps the aggregate metrics to tiles. When the period
// had expenses but no income, the balance and savings changes are
// forced bad regardless of sign — the baseline is degenerate.
func BuildSummary(s model.FinancialSummary) SummaryView {
	expenseOnly := s.ExpenseOnly()

	return SummaryView{
		Tiles: []Tile{
			{Label: "Total Balance", Amount: s.TotalBalance, Change: display.Change(s.BalanceChange, false, expenseOnly)},
			{Label: "Monthly Income", Amount: s.MonthlyIncome, Change: display.Change(s.IncomeChange, false, false)},
			{Label: "Monthly Expenses", Amount: s.MonthlyExpenses, Change: display.Change(s.ExpenseChange, true, false)},
			{Label: "Savings", Amount: s.Savings, Change: display.Change(s.SavingsChange, false, expenseOnly)},
		},
		SavingsRate: clampPercent(s.SavingsRate),
		DebtRatio:   clampPercent(s.DebtRatio),
		HealthScore: s.HealthScore,
		HealthLabel: s.HealthLabel,
		HealthColor: display.HealthColor(s.HealthLabel),
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// FeedItem is one row of the transaction feed.
type FeedItem struct {
	Token    display.Token
	Title    string
	Subtitle string
	Amount   decimal.Decimal
	Income   bool
}

// BuildFeed maps transactions to feed rows, truncated to FeedLimit.
func BuildFeed(transactions []model.Transaction) []FeedItem {
	if len(transactions) > FeedLimit {
		transactions = transactions[:FeedLimit]
	}

	items := make([]FeedItem, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, FeedItem{
			Token:    display.CategoryToken(tx.Category()),
			Title:    tx.DisplayName(),
			Subtitle: fmt.Sprintf("%s • %s", tx.Category(), tx.Date.Format("Jan 2")),
			Amount:   tx.Amount,
			Income:   tx.Income(),
		})
	}
	return items
}

// BudgetRow is one budget with its utilization bar state.
type BudgetRow struct {
	Category string
	Color    display.Color
	Spent    decimal.Decimal
	Limit    decimal.Decimal
	Percent  float64
}

// BuildBudgets maps budgets to rows with bar colors.
func BuildBudgets(budgets []model.Budget) []BudgetRow {
	rows := make([]BudgetRow, 0, len(budgets))
	for _, b := range budgets {
		pct := display.UtilizationPercent(b.Spent, b.Limit)
		rows = append(rows, BudgetRow{
			Category: b.Category,
			Spent:    b.Spent,
			Limit:    b.Limit,
			Percent:  pct,
			Color:    display.UtilizationColor(pct),
		})
	}
	return rows
}

// WarningRow is a budget-insight warning with its suggested fix.
type WarningRow struct {
	Category       string
	Recommendation string
	SuggestedLimit decimal.Decimal
}

// BuildBudgetWarnings keeps only the overspending forecasts. An empty
// result means the budget is optimized.
func BuildBudgetWarnings(insights []model.BudgetInsight) []WarningRow {
	var rows []WarningRow
	for _, in := range insights {
		if !in.Overspending() {
			continue
		}
		rows = append(rows, WarningRow{
			Category:       in.Category,
			Recommendation: in.SavingsRecommendation,
			SuggestedLimit: in.RecommendedLimit(),
		})
	}
	return rows
}

// InsightCard is one AI insight ready to render.
type InsightCard struct {
	Icon        string
	Title       string
	Description string
	Category    string
	Details     string
	Color       display.Color
	Warning     bool
}

// BuildInsights maps insights to cards. An empty list, or a single
// General insight, collapses to a placeholder message instead of a
// card grid.
func BuildInsights(insights []model.Insight) (cards []InsightCard, placeholder string) {
	if len(insights) == 0 {
		return nil, "No new AI insights available."
	}
	if len(insights) == 1 && insights[0].Type == model.InsightGeneral {
		return nil, insights[0].Description
	}

	cards = make([]InsightCard, 0, len(insights))
	for _, in := range insights {
		cards = append(cards, InsightCard{
			Icon:        display.InsightIcon(in.Type),
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Details:     in.Details,
			Color:       display.InsightColor(in),
			Warning:     in.Warning(),
		})
	}
	return cards, ""
}

// GoalRow is one savings goal with its derived progress.
type GoalRow struct {
	Name     string
	Progress display.GoalProgress
	Saved    decimal.Decimal
	Target   decimal.Decimal
}

// BuildGoals maps goals to rows, deriving status against now.
func BuildGoals(goals []model.SavingsGoal, now time.Time) []GoalRow {
	rows := make([]GoalRow, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, GoalRow{
			Name:     g.Name,
			Saved:    g.Saved,
			Target:   g.Target,
			Progress: display.Goal(g.Saved, g.Target, g.Deadline, now),
		})
	}
	return rows
}
