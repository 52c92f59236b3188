package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/tui/themes"
)

const barWidth = 20

// RenderBudgets renders utilization bars plus any overspend warnings.
// warningsFailed suppresses the all-clear line when the warnings fetch
// itself failed, since no warnings then means no data.
func RenderBudgets(theme themes.Theme, rows []dashboard.BudgetRow, warnings []dashboard.WarningRow, warningsFailed bool) string {
	var parts []string

	if len(rows) == 0 {
		parts = append(parts, theme.StatusPending.Render("No budgets configured"))
	}
	for _, row := range rows {
		parts = append(parts, lipgloss.JoinVertical(
			lipgloss.Left,
			theme.Normal.Render(fmt.Sprintf("%s  %s / %s", row.Category, moneyFor(row.Spent), moneyFor(row.Limit))),
			utilizationBar(theme, row),
		))
	}

	if len(warnings) == 0 && !warningsFailed {
		parts = append(parts, theme.StatusSuccess.Render("Your budget is optimized"))
	}
	for _, warning := range warnings {
		parts = append(parts, lipgloss.JoinVertical(
			lipgloss.Left,
			theme.StatusWarning.Render(fmt.Sprintf("⚠ %s is trending over budget", warning.Category)),
			theme.Subtitle.Render(fmt.Sprintf("%s · suggested limit %s", warning.Recommendation, moneyFor(warning.SuggestedLimit))),
		))
	}

	return sectionBox(theme, "Budgets", lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func utilizationBar(theme themes.Theme, row dashboard.BudgetRow) string {
	filled := int(row.Percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().
		Foreground(themes.ColorFor(row.Color)).
		Render(strings.Repeat("█", filled))
	rest := theme.ProgressEmpty.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("%s%s %.0f%%", bar, rest, row.Percent)
}
