package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
)

// budgetRecord tolerates the field-name drift between backend
// versions: spent_amount vs spent, limit_amount vs amount,
// category_name vs category.
type budgetRecord struct {
	LimitAmount  *decimal.Decimal `json:"limit_amount"`
	Amount       *decimal.Decimal `json:"amount"`
	SpentAmount  *decimal.Decimal `json:"spent_amount"`
	Spent        *decimal.Decimal `json:"spent"`
	CategoryName string           `json:"category_name"`
	Category     string           `json:"category"`
	ID           int64            `json:"id"`
}

func (r budgetRecord) normalize() model.Budget {
	b := model.Budget{ID: r.ID, Category: r.CategoryName}
	if b.Category == "" {
		b.Category = r.Category
	}
	b.Limit = firstDecimal(r.LimitAmount, r.Amount)
	b.Spent = firstDecimal(r.SpentAmount, r.Spent)
	return b
}

func firstDecimal(values ...*decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return decimal.Zero
}

// Budgets fetches the user's active budgets.
func (c *Client) Budgets(ctx context.Context) ([]model.Budget, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/transactions/budget/", &raw); err != nil {
		return nil, err
	}

	records, err := decodeList[budgetRecord](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode budgets: %w", err)
	}

	budgets := make([]model.Budget, 0, len(records))
	for _, r := range records {
		budgets = append(budgets, r.normalize())
	}
	return budgets, nil
}

// CreateBudget posts a new budget for a category.
func (c *Client) CreateBudget(ctx context.Context, category string, limit decimal.Decimal) error {
	body := map[string]any{
		"category":     category,
		"limit_amount": limit,
	}
	return c.post(ctx, "/api/transactions/budget/", body, nil)
}

// UpcomingBills fetches active recurring payments due today or later,
// ordered by next payment date.
func (c *Client) UpcomingBills(ctx context.Context) ([]model.Bill, error) {
	var records []struct {
		Name            string          `json:"name"`
		Category        string          `json:"category"`
		Frequency       string          `json:"frequency"`
		NextPaymentDate string          `json:"next_payment_date"`
		Amount          decimal.Decimal `json:"amount"`
		DaysRemaining   int             `json:"days_remaining"`
		ID              int64           `json:"id"`
	}
	if err := c.get(ctx, "/api/transactions/upcoming-bills/", &records); err != nil {
		return nil, err
	}

	bills := make([]model.Bill, 0, len(records))
	for _, r := range records {
		bills = append(bills, model.Bill{
			ID:              r.ID,
			Name:            r.Name,
			Amount:          r.Amount,
			Category:        r.Category,
			Frequency:       r.Frequency,
			DaysRemaining:   r.DaysRemaining,
			NextPaymentDate: parseDate(r.NextPaymentDate),
		})
	}
	return bills, nil
}
