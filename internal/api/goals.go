package api

import (
	"context"
	"time"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
)

// GoalProgress fetches the user's savings goals with their current
// saved amounts.
func (c *Client) GoalProgress(ctx context.Context) ([]model.SavingsGoal, error) {
	var records []struct {
		Name         string          `json:"name"`
		Deadline     string          `json:"deadline"`
		TargetAmount decimal.Decimal `json:"target_amount"`
		SavedAmount  decimal.Decimal `json:"saved_amount"`
		ID           int64           `json:"id"`
	}
	if err := c.get(ctx, "/api/insights/goal-progress/", &records); err != nil {
		return nil, err
	}

	goals := make([]model.SavingsGoal, 0, len(records))
	for _, r := range records {
		goals = append(goals, model.SavingsGoal{
			ID:       r.ID,
			Name:     r.Name,
			Target:   r.TargetAmount,
			Saved:    r.SavedAmount,
			Deadline: parseDate(r.Deadline),
		})
	}
	return goals, nil
}

// AddGoal creates a new savings goal.
func (c *Client) AddGoal(ctx context.Context, name string, target decimal.Decimal, deadline time.Time) error {
	body := map[string]any{
		"name":          name,
		"target_amount": target,
		"deadline":      deadline.Format("2006-01-02"),
	}
	return c.post(ctx, "/api/insights/add-goal/", body, nil)
}
