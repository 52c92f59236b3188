package components

import (
	"testing"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/finsight-cli/finsight/internal/tui/themes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoiceEntry_DraftRoundTrip(t *testing.T) {
	form := NewVoiceEntryModel(themes.Default)
	form.SetDraft(model.VoiceDraft{
		Amount:   decimal.NewFromInt(500),
		Category: "Food",
		Type:     model.TypeExpense,
	})

	draft, err := form.Draft()
	require.NoError(t, err)
	assert.Equal(t, "500", draft.Amount.String())
	assert.Equal(t, "Food", draft.Category)
	assert.Equal(t, model.TypeExpense, draft.Type)
}

func TestVoiceEntry_DraftValidation(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		category string
		kind     string
		wantErr  string
	}{
		{"bad amount", "lots", "Food", "expense", "invalid amount"},
		{"bad type", "10", "Food", "maybe", "type must be income or expense"},
		{"missing category", "10", "  ", "expense", "category is required"},
		{"type is case insensitive", "10", "Food", "INCOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewVoiceEntryModel(themes.Default)
			form.inputs[fieldAmount].SetValue(tt.amount)
			form.inputs[fieldCategory].SetValue(tt.category)
			form.inputs[fieldType].SetValue(tt.kind)

			_, err := form.Draft()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
