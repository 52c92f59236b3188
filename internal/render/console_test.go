package render

import (
	"io"
	"os"
	"testing"

	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestSpending_ZeroSeriesRendersEmptyBars(t *testing.T) {
	snap := &dashboard.Snapshot{
		Errors: map[string]error{},
		Spending: model.SpendingAnalysis{
			Months:   []string{"Jan", "Feb"},
			Income:   []float64{0, 0},
			Expenses: []float64{0, 0},
		},
	}

	out := captureStdout(t, func() { Spending(snap) })

	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Feb")
	assert.Contains(t, out, "░", "months with no activity still get their bars")
	assert.NotContains(t, out, "█")
}

func TestBar_Clamps(t *testing.T) {
	assert.NotContains(t, bar(-10, 100), "█")
	assert.NotContains(t, bar(500, 100), "░")
}
