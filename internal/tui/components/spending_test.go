package components

import (
	"testing"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/finsight-cli/finsight/internal/tui/themes"
	"github.com/stretchr/testify/assert"
)

func TestRenderSpending_NegativeValuesDoNotPanic(t *testing.T) {
	out := RenderSpending(themes.Default, model.SpendingAnalysis{
		Months:   []string{"Jan"},
		Income:   []float64{100},
		Expenses: []float64{-25},
	})

	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "-25")
}

func TestRenderSpending_EmptyAndRaggedSeries(t *testing.T) {
	out := RenderSpending(themes.Default, model.SpendingAnalysis{})
	assert.Contains(t, out, "No spending data yet")

	// A month with no matching series entry reads as zero.
	out = RenderSpending(themes.Default, model.SpendingAnalysis{
		Months: []string{"Jan", "Feb"},
		Income: []float64{100},
	})
	assert.Contains(t, out, "Feb")
}
