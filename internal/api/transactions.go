package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
)

type transactionRecord struct {
	Date         string          `json:"date"`
	CategoryName string          `json:"category_name"`
	CategoryType string          `json:"category_type"`
	Currency     string          `json:"currency"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ID           int64           `json:"id"`
}

func (r transactionRecord) normalize() model.Transaction {
	return model.Transaction{
		ID:           r.ID,
		Date:         parseDate(r.Date),
		Amount:       r.Amount.Abs(),
		Currency:     r.Currency,
		CategoryName: r.CategoryName,
		CategoryType: model.CategoryType(r.CategoryType),
		Description:  r.Description,
	}
}

// Transactions fetches the user's transactions. Older backends return
// a bare array, newer ones a pagination envelope; both decode.
func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/transactions/", &raw); err != nil {
		return nil, err
	}

	records, err := decodeList[transactionRecord](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	transactions := make([]model.Transaction, 0, len(records))
	for _, r := range records {
		transactions = append(transactions, r.normalize())
	}
	return transactions, nil
}

// NewTransaction is the payload for creating a transaction manually.
type NewTransaction struct {
	Date         time.Time
	CategoryType model.CategoryType
	Currency     string
	Description  string
	Amount       decimal.Decimal
	CategoryID   int64
}

// CreateTransaction posts a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, tx NewTransaction) error {
	body := map[string]any{
		"date":          tx.Date.Format("2006-01-02"),
		"category_type": tx.CategoryType,
		"category":      tx.CategoryID,
		"amount":        tx.Amount,
		"currency":      tx.Currency,
		"description":   tx.Description,
	}
	return c.post(ctx, "/api/transactions/", body, nil)
}

// DeleteTransaction removes a transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/api/transactions/%d/", id))
}

// Categories lists the selectable transaction categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var records []struct {
		Name string `json:"name"`
		Type string `json:"type"`
		ID   int64  `json:"id"`
	}
	if err := c.get(ctx, "/api/transactions/categories/", &records); err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, model.Category{
			ID:   r.ID,
			Name: r.Name,
			Type: model.CategoryType(r.Type),
		})
	}
	return categories, nil
}

// parseDate handles the two date encodings observed from the backend:
// plain dates and full RFC 3339 timestamps. Unparseable input yields
// the zero time rather than an error; dates are presentation-only.
func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
