package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/display"
	"github.com/finsight-cli/finsight/internal/model"
	"github.com/finsight-cli/finsight/internal/tui/themes"
)

const chartWidth = 24

// RenderSpending renders income and expense bars per period.
func RenderSpending(theme themes.Theme, analysis model.SpendingAnalysis) string {
	if len(analysis.Months) == 0 {
		return sectionBox(theme, "Spending Analysis",
			theme.StatusPending.Render("No spending data yet"))
	}

	peak := 0.0
	for i := range analysis.Months {
		if v := valueAt(analysis.Income, i); v > peak {
			peak = v
		}
		if v := valueAt(analysis.Expenses, i); v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	rows := make([]string, 0, len(analysis.Months)*2)
	for i, month := range analysis.Months {
		rows = append(rows,
			chartRow(theme, month, valueAt(analysis.Income, i), peak, display.Green),
			chartRow(theme, "", valueAt(analysis.Expenses, i), peak, display.Red),
		)
	}

	legend := theme.Subtitle.Render("█ income · █ expenses")
	return sectionBox(theme, "Spending Analysis",
		lipgloss.JoinVertical(lipgloss.Left, append(rows, legend)...))
}

func chartRow(theme themes.Theme, label string, value, peak float64, color display.Color) string {
	filled := int(value / peak * chartWidth)
	if filled > chartWidth {
		filled = chartWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().
		Foreground(themes.ColorFor(color)).
		Render(strings.Repeat("█", filled))

	return fmt.Sprintf("%s %s %s",
		theme.Subtitle.Render(fmt.Sprintf("%-4s", label)),
		bar,
		theme.Normal.Render(fmt.Sprintf("%.0f", value)),
	)
}

func valueAt(series []float64, i int) float64 {
	if i >= len(series) {
		return 0
	}
	return series[i]
}
