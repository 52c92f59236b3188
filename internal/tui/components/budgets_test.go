package components

import (
	"testing"

	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/tui/themes"
	"github.com/stretchr/testify/assert"
)

func TestRenderBudgets_AllClearOnlyWithWarningData(t *testing.T) {
	rows := []dashboard.BudgetRow{{Category: "Food", Percent: 50}}

	out := RenderBudgets(themes.Default, rows, nil, false)
	assert.Contains(t, out, "Your budget is optimized")

	// No warnings because the fetch failed is not an all-clear.
	out = RenderBudgets(themes.Default, rows, nil, true)
	assert.NotContains(t, out, "Your budget is optimized")
}

func TestRenderBudgets_WarningsListed(t *testing.T) {
	out := RenderBudgets(themes.Default, nil, []dashboard.WarningRow{
		{Category: "Dining", Recommendation: "Trim takeout"},
	}, false)

	assert.Contains(t, out, "Dining is trending over budget")
	assert.Contains(t, out, "Trim takeout")
	assert.NotContains(t, out, "Your budget is optimized")
}
