package api

import (
	"context"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
)

// insightRecord accepts both observed AI-insight shapes: the
// canonical description/llm_details one and the older
// message/suggested_budget iteration.
type insightRecord struct {
	SuggestedLimit  *decimal.Decimal `json:"suggested_limit"`
	SuggestedBudget *decimal.Decimal `json:"suggested_budget"`
	Type            string           `json:"type"`
	Category        string           `json:"category"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Message         string           `json:"message"`
	LLMDetails      string           `json:"llm_details"`
}

func (r insightRecord) normalize() model.Insight {
	description := r.Description
	if description == "" {
		description = r.Message
	}
	return model.Insight{
		Type:           model.InsightType(r.Type),
		Category:       r.Category,
		Title:          r.Title,
		Description:    description,
		Details:        r.LLMDetails,
		SuggestedLimit: firstDecimal(r.SuggestedLimit, r.SuggestedBudget),
	}
}

// AIInsights fetches the server-generated insight cards.
func (c *Client) AIInsights(ctx context.Context) ([]model.Insight, error) {
	var records []insightRecord
	if err := c.get(ctx, "/api/insights/ai-insights/", &records); err != nil {
		return nil, err
	}

	insights := make([]model.Insight, 0, len(records))
	for _, r := range records {
		insights = append(insights, r.normalize())
	}
	return insights, nil
}

// BudgetInsights fetches per-category spending forecasts.
func (c *Client) BudgetInsights(ctx context.Context) ([]model.BudgetInsight, error) {
	var records []struct {
		Category              string          `json:"category"`
		SavingsRecommendation string          `json:"savings_recommendation"`
		AverageSpending       decimal.Decimal `json:"average_spending"`
		ForecastedSpending    decimal.Decimal `json:"forecasted_spending"`
		SuggestedLimit        decimal.Decimal `json:"suggested_limit"`
	}
	if err := c.get(ctx, "/api/insights/budget-insights/", &records); err != nil {
		return nil, err
	}

	insights := make([]model.BudgetInsight, 0, len(records))
	for _, r := range records {
		insights = append(insights, model.BudgetInsight{
			Category:              r.Category,
			AverageSpending:       r.AverageSpending,
			ForecastedSpending:    r.ForecastedSpending,
			SavingsRecommendation: r.SavingsRecommendation,
			SuggestedLimit:        r.SuggestedLimit,
		})
	}
	return insights, nil
}

// AcceptSuggestedBudget applies an AI-suggested budget reallocation
// and returns the backend's confirmation message.
func (c *Client) AcceptSuggestedBudget(ctx context.Context, category string, newLimit decimal.Decimal) (string, error) {
	body := map[string]any{
		"category":  category,
		"new_limit": newLimit,
	}
	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := c.post(ctx, "/api/insights/accept-suggested-budget/", body, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", &Error{Status: 200, Message: resp.Error}
	}
	return resp.Message, nil
}
