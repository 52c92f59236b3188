package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/finsight-cli/finsight/internal/display"
	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAPI serves canned data per section, with optional per-section
// failures.
type stubAPI struct {
	failures      map[string]error
	summary       model.FinancialSummary
	spending      model.SpendingAnalysis
	transactions  []model.Transaction
	budgets       []model.Budget
	budgetRows    []model.BudgetInsight
	insights      []model.Insight
	goals         []model.SavingsGoal
	bills         []model.Bill
	notifications []model.Notification
}

func (s *stubAPI) fail(section string) error {
	if s.failures == nil {
		return nil
	}
	return s.failures[section]
}

func (s *stubAPI) FinancialSummary(context.Context) (model.FinancialSummary, error) {
	return s.summary, s.fail("summary")
}

func (s *stubAPI) SpendingAnalysis(context.Context, string) (model.SpendingAnalysis, error) {
	return s.spending, s.fail("spending")
}

func (s *stubAPI) Transactions(context.Context) ([]model.Transaction, error) {
	return s.transactions, s.fail("transactions")
}

func (s *stubAPI) Budgets(context.Context) ([]model.Budget, error) {
	return s.budgets, s.fail("budgets")
}

func (s *stubAPI) BudgetInsights(context.Context) ([]model.BudgetInsight, error) {
	return s.budgetRows, s.fail("budget-warnings")
}

func (s *stubAPI) AIInsights(context.Context) ([]model.Insight, error) {
	return s.insights, s.fail("insights")
}

func (s *stubAPI) GoalProgress(context.Context) ([]model.SavingsGoal, error) {
	return s.goals, s.fail("goals")
}

func (s *stubAPI) UpcomingBills(context.Context) ([]model.Bill, error) {
	return s.bills, s.fail("bills")
}

func (s *stubAPI) Notifications(context.Context) ([]model.Notification, error) {
	return s.notifications, s.fail("notifications")
}

func TestBuildFeed_CapsAtSixItems(t *testing.T) {
	var transactions []model.Transaction
	for i := 0; i < 10; i++ {
		transactions = append(transactions, model.Transaction{
			ID:           int64(i + 1),
			Description:  fmt.Sprintf("tx %d", i+1),
			CategoryName: "Food",
			CategoryType: model.TypeExpense,
			Amount:       decimal.NewFromInt(10),
			Date:         time.Date(2026, 3, i+1, 0, 0, 0, 0, time.UTC),
		})
	}

	feed := BuildFeed(transactions)
	require.Len(t, feed, FeedLimit)
	assert.Equal(t, "tx 1", feed[0].Title, "most recent first, as the backend orders them")
	assert.Equal(t, "tx 6", feed[5].Title)
}

func TestBuildFeed_SubtitleAndToken(t *testing.T) {
	feed := BuildFeed([]model.Transaction{{
		Description:  "Weekly shop",
		CategoryName: "Food",
		CategoryType: model.TypeExpense,
		Amount:       decimal.NewFromInt(42),
		Date:         time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}})

	require.Len(t, feed, 1)
	assert.Equal(t, "Weekly shop", feed[0].Title)
	assert.Equal(t, "Food • Mar 4", feed[0].Subtitle)
	assert.Equal(t, "🍕", feed[0].Token.Icon)
	assert.False(t, feed[0].Income)
}

func TestBuildSummary_ExpenseOnlyForcesNegative(t *testing.T) {
	view := BuildSummary(model.FinancialSummary{
		MonthlyIncome:   decimal.Zero,
		MonthlyExpenses: decimal.NewFromInt(300),
		BalanceChange:   12.5,
		SavingsChange:   4,
		IncomeChange:    3,
		ExpenseChange:   -8,
	})

	byLabel := map[string]Tile{}
	for _, tile := range view.Tiles {
		byLabel[tile.Label] = tile
	}

	// Balance and savings are forced bad despite positive deltas.
	assert.True(t, byLabel["Total Balance"].Change.Bad)
	assert.Equal(t, display.ArrowDown, byLabel["Total Balance"].Change.Arrow)
	assert.True(t, byLabel["Savings"].Change.Bad)

	// Income and expenses keep their own semantics.
	assert.False(t, byLabel["Monthly Income"].Change.Bad)
	assert.False(t, byLabel["Monthly Expenses"].Change.Bad, "falling expenses are good")
}

func TestBuildBudgetWarnings_OnlyOverspending(t *testing.T) {
	rows := BuildBudgetWarnings([]model.BudgetInsight{
		{Category: "Dining", AverageSpending: decimal.NewFromInt(100), ForecastedSpending: decimal.NewFromInt(180)},
		{Category: "Rent", AverageSpending: decimal.NewFromInt(900), ForecastedSpending: decimal.NewFromInt(900)},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Dining", rows[0].Category)
	assert.Equal(t, "180", rows[0].SuggestedLimit.String())
}

func TestBuildInsights_Placeholders(t *testing.T) {
	cards, note := BuildInsights(nil)
	assert.Empty(t, cards)
	assert.Equal(t, "No new AI insights available.", note)

	cards, note = BuildInsights([]model.Insight{
		{Type: model.InsightGeneral, Description: "Spending looks steady this month."},
	})
	assert.Empty(t, cards)
	assert.Equal(t, "Spending looks steady this month.", note)

	cards, note = BuildInsights([]model.Insight{
		{Type: model.InsightAnomaly, Title: "Unusual spend"},
		{Type: model.InsightGeneral, Description: "All good otherwise"},
	})
	assert.Len(t, cards, 2)
	assert.Empty(t, note)
	assert.True(t, cards[0].Warning)
}

func TestLoadSnapshot_AllSectionsPopulated(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	backend := &stubAPI{
		summary:  model.FinancialSummary{HealthLabel: "Excellent", TotalBalance: decimal.NewFromInt(1200)},
		spending: model.SpendingAnalysis{Months: []string{"Jan"}, Income: []float64{100}, Expenses: []float64{50}},
		transactions: []model.Transaction{
			{Description: "Coffee", CategoryName: "Food", CategoryType: model.TypeExpense, Amount: decimal.NewFromInt(4), Date: now},
		},
		budgets: []model.Budget{
			{Category: "Food", Limit: decimal.NewFromInt(200), Spent: decimal.NewFromInt(190)},
		},
		budgetRows: []model.BudgetInsight{
			{Category: "Food", AverageSpending: decimal.NewFromInt(150), ForecastedSpending: decimal.NewFromInt(220)},
		},
		insights: []model.Insight{
			{Type: model.InsightAnomaly, Title: "Spike"},
			{Type: model.InsightForecast, Title: "Trend"},
		},
		goals: []model.SavingsGoal{
			{Name: "Trip", Saved: decimal.NewFromInt(300), Target: decimal.NewFromInt(1000), Deadline: now.AddDate(0, 2, 0)},
		},
		bills:         []model.Bill{{Name: "Rent", Amount: decimal.NewFromInt(900)}},
		notifications: []model.Notification{{Title: "Welcome"}},
	}

	snap := LoadSnapshot(context.Background(), backend, now)

	assert.Empty(t, snap.Errors)
	assert.Equal(t, display.Green, snap.Summary.HealthColor)
	assert.Len(t, snap.Feed, 1)
	require.Len(t, snap.Budgets, 1)
	assert.Equal(t, display.Red, snap.Budgets[0].Color)
	assert.Len(t, snap.Warnings, 1)
	assert.Len(t, snap.Insights, 2)
	assert.Len(t, snap.Goals, 1)
	assert.Len(t, snap.Bills, 1)
	assert.Len(t, snap.Notifications, 1)
	assert.Equal(t, now, snap.FetchedAt)
}

func TestSnapshot_MergePreviousKeepsFailedSections(t *testing.T) {
	prev := &Snapshot{
		Feed:        []FeedItem{{Title: "Coffee"}},
		Warnings:    []WarningRow{{Category: "Dining"}},
		Insights:    []InsightCard{{Title: "Spike"}},
		InsightNote: "Watch dining spend",
		Budgets:     []BudgetRow{{Category: "Food"}},
	}
	next := &Snapshot{
		Errors: map[string]error{
			"transactions":    errors.New("feed endpoint down"),
			"budget-warnings": errors.New("insights timed out"),
			"insights":        errors.New("insights timed out"),
		},
		Budgets: []BudgetRow{{Category: "Rent"}},
	}

	next.MergePrevious(prev)

	assert.Equal(t, prev.Feed, next.Feed, "failed sections keep their last good data")
	assert.Equal(t, prev.Warnings, next.Warnings)
	assert.Equal(t, prev.Insights, next.Insights)
	assert.Equal(t, prev.InsightNote, next.InsightNote)
	assert.Equal(t, "Rent", next.Budgets[0].Category, "healthy sections are not overwritten")
	assert.True(t, next.Failed("transactions"), "errors still mark the stale sections")
}

func TestSnapshot_MergePreviousNilPrevious(t *testing.T) {
	next := &Snapshot{Errors: map[string]error{"summary": errors.New("down")}}
	next.MergePrevious(nil)
	assert.Empty(t, next.Feed)
}

func TestLoadSnapshot_SectionFailureIsIsolated(t *testing.T) {
	backend := &stubAPI{
		transactions: []model.Transaction{
			{Description: "Coffee", CategoryType: model.TypeExpense, Amount: decimal.NewFromInt(4)},
		},
		failures: map[string]error{
			"summary":  errors.New("summary endpoint down"),
			"insights": errors.New("insights timed out"),
		},
	}

	snap := LoadSnapshot(context.Background(), backend, time.Now())

	assert.True(t, snap.Failed("summary"))
	assert.True(t, snap.Failed("insights"))
	assert.False(t, snap.Failed("transactions"))
	assert.Len(t, snap.Feed, 1, "healthy sections still render")
	assert.Len(t, snap.Errors, 2)
}
