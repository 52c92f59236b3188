package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryToken_KnownCategories(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		wantIcon   string
		wantBg     Color
		wantAmount Color
	}{
		{name: "salary is income green", category: "Salary", wantIcon: "🏦", wantBg: Green, wantAmount: Green},
		{name: "freelance is income green", category: "freelance", wantIcon: "💼", wantBg: Green, wantAmount: Green},
		{name: "netflix is red", category: "Netflix", wantIcon: "🎬", wantBg: Red, wantAmount: Red},
		{name: "rent is teal home", category: "RENT", wantIcon: "🏠", wantBg: Teal, wantAmount: Red},
		{name: "food aliases to dining token", category: "food", wantIcon: "🍕", wantBg: Orange, wantAmount: Red},
		{name: "utilities are yellow", category: "Utilities", wantIcon: "💡", wantBg: Yellow, wantAmount: Red},
		{name: "charity is pink heart", category: "Donation", wantIcon: "❤️", wantBg: Pink, wantAmount: Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := CategoryToken(tt.category)
			assert.Equal(t, tt.wantIcon, tok.Icon)
			assert.Equal(t, tt.wantBg, tok.Background)
			assert.Equal(t, tt.wantAmount, tok.Amount)
		})
	}
}

func TestCategoryToken_UnknownFallsBackToDefault(t *testing.T) {
	for _, category := range []string{"Llama Rentals", "", "   ", "Other", "xyzzy"} {
		tok := CategoryToken(category)
		assert.Equal(t, Token{Icon: "📄", Background: Gray, Amount: Red}, tok,
			"category %q should get the neutral default", category)
	}
}

func TestCategoryToken_CaseInsensitive(t *testing.T) {
	assert.Equal(t, CategoryToken("groceries"), CategoryToken("GROCERIES"))
	assert.Equal(t, CategoryToken("Amazon Prime"), CategoryToken("amazon prime"))
}

func TestHealthColor(t *testing.T) {
	assert.Equal(t, Green, HealthColor("Excellent"))
	assert.Equal(t, Red, HealthColor("Poor"))
	assert.Equal(t, Gray, HealthColor(""))
	assert.Equal(t, Yellow, HealthColor("Good"))
}
