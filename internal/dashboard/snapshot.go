package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/finsight-cli/finsight/internal/model"
	"golang.org/x/sync/errgroup"
)

// API is the backend surface the dashboard reads from.
type API interface {
	FinancialSummary(ctx context.Context) (model.FinancialSummary, error)
	SpendingAnalysis(ctx context.Context, period string) (model.SpendingAnalysis, error)
	Transactions(ctx context.Context) ([]model.Transaction, error)
	Budgets(ctx context.Context) ([]model.Budget, error)
	BudgetInsights(ctx context.Context) ([]model.BudgetInsight, error)
	AIInsights(ctx context.Context) ([]model.Insight, error)
	GoalProgress(ctx context.Context) ([]model.SavingsGoal, error)
	UpcomingBills(ctx context.Context) ([]model.Bill, error)
	Notifications(ctx context.Context) ([]model.Notification, error)
}

// Snapshot holds every dashboard section for one refresh. Sections
// whose fetch failed are left zero-valued and recorded in Errors, so a
// renderer can show the rest and flag the gaps.
type Snapshot struct {
	Errors        map[string]error
	InsightNote   string
	Summary       SummaryView
	Spending      model.SpendingAnalysis
	Feed          []FeedItem
	Budgets       []BudgetRow
	Warnings      []WarningRow
	Insights      []InsightCard
	Goals         []GoalRow
	Bills         []model.Bill
	Notifications []model.Notification
	FetchedAt     time.Time
}

// Failed reports whether the named section's fetch failed.
func (s *Snapshot) Failed(section string) bool {
	_, ok := s.Errors[section]
	return ok
}

// MergePrevious restores every failed section from an earlier
// snapshot, so a refresh that partially fails keeps showing the last
// good data instead of the section's empty state.
func (s *Snapshot) MergePrevious(prev *Snapshot) {
	if prev == nil {
		return
	}
	for name := range s.Errors {
		switch name {
		case "summary":
			s.Summary = prev.Summary
		case "spending":
			s.Spending = prev.Spending
		case "transactions":
			s.Feed = prev.Feed
		case "budgets":
			s.Budgets = prev.Budgets
		case "budget-warnings":
			s.Warnings = prev.Warnings
		case "insights":
			s.Insights = prev.Insights
			s.InsightNote = prev.InsightNote
		case "goals":
			s.Goals = prev.Goals
		case "bills":
			s.Bills = prev.Bills
		case "notifications":
			s.Notifications = prev.Notifications
		}
	}
}

// LoadSnapshot fetches all sections concurrently. A failed section is
// logged and recorded; it never aborts the other fetches, and
// LoadSnapshot itself never returns an error.
func LoadSnapshot(ctx context.Context, backend API, now time.Time) *Snapshot {
	snap := &Snapshot{
		Errors:    make(map[string]error),
		FetchedAt: now,
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	section := func(name string, fetch func() error) {
		g.Go(func() error {
			if err := fetch(); err != nil {
				slog.Warn("dashboard section failed", "section", name, "error", err)
				mu.Lock()
				snap.Errors[name] = err
				mu.Unlock()
			}
			return nil
		})
	}

	section("summary", func() error {
		summary, err := backend.FinancialSummary(ctx)
		if err != nil {
			return err
		}
		snap.Summary = BuildSummary(summary)
		return nil
	})
	section("spending", func() error {
		analysis, err := backend.SpendingAnalysis(ctx, "month")
		if err != nil {
			return err
		}
		snap.Spending = analysis
		return nil
	})
	section("transactions", func() error {
		transactions, err := backend.Transactions(ctx)
		if err != nil {
			return err
		}
		snap.Feed = BuildFeed(transactions)
		return nil
	})
	section("budgets", func() error {
		budgets, err := backend.Budgets(ctx)
		if err != nil {
			return err
		}
		snap.Budgets = BuildBudgets(budgets)
		return nil
	})
	section("budget-warnings", func() error {
		insights, err := backend.BudgetInsights(ctx)
		if err != nil {
			return err
		}
		snap.Warnings = BuildBudgetWarnings(insights)
		return nil
	})
	section("insights", func() error {
		insights, err := backend.AIInsights(ctx)
		if err != nil {
			return err
		}
		snap.Insights, snap.InsightNote = BuildInsights(insights)
		return nil
	})
	section("goals", func() error {
		goals, err := backend.GoalProgress(ctx)
		if err != nil {
			return err
		}
		snap.Goals = BuildGoals(goals, now)
		return nil
	})
	section("bills", func() error {
		bills, err := backend.UpcomingBills(ctx)
		if err != nil {
			return err
		}
		snap.Bills = bills
		return nil
	})
	section("notifications", func() error {
		notifications, err := backend.Notifications(ctx)
		if err != nil {
			return err
		}
		snap.Notifications = notifications
		return nil
	})

	_ = g.Wait()
	return snap
}
