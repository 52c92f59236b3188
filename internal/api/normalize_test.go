package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func TestTransactions_PaginatedAndBareShapes(t *testing.T) {
	record := `{"id":7,"date":"2026-02-14","amount":"1250.50","currency":"INR","category_name":"Salary","category_type":"income","description":"February pay"}`

	for name, body := range map[string]string{
		"paginated": `{"count":1,"results":[` + record + `]}`,
		"bare":      `[` + record + `]`,
	} {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, jsonHandler(body))

			transactions, err := client.Transactions(context.Background())
			require.NoError(t, err)
			require.Len(t, transactions, 1)

			tx := transactions[0]
			assert.Equal(t, int64(7), tx.ID)
			assert.Equal(t, "Salary", tx.CategoryName)
			assert.Equal(t, model.TypeIncome, tx.CategoryType)
			assert.Equal(t, "1250.5", tx.Amount.String())
			assert.Equal(t, 2026, tx.Date.Year())
			assert.True(t, tx.Income())
		})
	}
}

func TestBudgets_FieldNameDrift(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantCategory string
		wantLimit    string
		wantSpent    string
	}{
		{
			name:         "current field names",
			body:         `[{"id":1,"category_name":"Groceries","limit_amount":"400","spent_amount":"120"}]`,
			wantCategory: "Groceries",
			wantLimit:    "400",
			wantSpent:    "120",
		},
		{
			name:         "legacy field names",
			body:         `[{"id":2,"category":"Rent","amount":"900","spent":"900"}]`,
			wantCategory: "Rent",
			wantLimit:    "900",
			wantSpent:    "900",
		},
		{
			name:         "missing spend defaults to zero",
			body:         `[{"id":3,"category_name":"Travel","limit_amount":"250"}]`,
			wantCategory: "Travel",
			wantLimit:    "250",
			wantSpent:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, jsonHandler(tt.body))

			budgets, err := client.Budgets(context.Background())
			require.NoError(t, err)
			require.Len(t, budgets, 1)

			assert.Equal(t, tt.wantCategory, budgets[0].Category)
			assert.Equal(t, tt.wantLimit, budgets[0].Limit.String())
			assert.Equal(t, tt.wantSpent, budgets[0].Spent.String())
		})
	}
}

func TestAIInsights_ShapeDrift(t *testing.T) {
	body := `[
		{"type":"Anomaly","category":"Dining","title":"Unusual spending","description":"Dining spend tripled","llm_details":"Long explanation"},
		{"type":"Budget","category":"Travel","title":"Over budget","message":"Travel is over its limit","suggested_budget":"300"}
	]`
	client, _ := newTestClient(t, jsonHandler(body))

	insights, err := client.AIInsights(context.Background())
	require.NoError(t, err)
	require.Len(t, insights, 2)

	assert.Equal(t, "Dining spend tripled", insights[0].Description)
	assert.Equal(t, "Long explanation", insights[0].Details)
	assert.True(t, insights[0].Warning())

	assert.Equal(t, "Travel is over its limit", insights[1].Description)
	assert.Equal(t, "300", insights[1].SuggestedLimit.String())
	assert.True(t, insights[1].Warning())
}

func TestProcessVoiceEntry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, jsonHandler(`{"amount":500,"category":"Food","transaction_type":"expense"}`))

		draft, err := client.ProcessVoiceEntry(context.Background(), "spent five hundred on food")
		require.NoError(t, err)
		assert.Equal(t, "Food", draft.Category)
		assert.Equal(t, model.TypeExpense, draft.Type)
		assert.Equal(t, "500", draft.Amount.String())
	})

	t.Run("error field on 200", func(t *testing.T) {
		client, _ := newTestClient(t, jsonHandler(`{"error":"could not parse amount"}`))

		_, err := client.ProcessVoiceEntry(context.Background(), "mumble")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "could not parse amount", apiErr.Message)
	})
}

func TestConfirmVoiceTransaction_RequiresMessage(t *testing.T) {
	t.Run("message means saved", func(t *testing.T) {
		client, _ := newTestClient(t, jsonHandler(`{"message":"Transaction saved"}`))
		err := client.ConfirmVoiceTransaction(context.Background(), model.VoiceDraft{Category: "Food"})
		assert.NoError(t, err)
	})

	t.Run("missing message means failure", func(t *testing.T) {
		client, _ := newTestClient(t, jsonHandler(`{}`))
		err := client.ConfirmVoiceTransaction(context.Background(), model.VoiceDraft{Category: "Food"})
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
	})
}

func TestSpendingAnalysis_PeriodQuery(t *testing.T) {
	var gotPeriod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPeriod = r.URL.Query().Get("period")
		_, _ = w.Write([]byte(`{"bar_months":["Jan","Feb"],"bar_income":[100,200],"bar_expenses":[50,75]}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, newTestSession(t))
	require.NoError(t, err)

	analysis, err := client.SpendingAnalysis(context.Background(), "month")
	require.NoError(t, err)
	assert.Equal(t, "month", gotPeriod)
	assert.Equal(t, []string{"Jan", "Feb"}, analysis.Months)
	assert.Equal(t, []float64{100, 200}, analysis.Income)
	assert.Equal(t, []float64{50, 75}, analysis.Expenses)
}
