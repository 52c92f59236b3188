package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/display"
	"github.com/finsight-cli/finsight/internal/tui/themes"
)

// RenderGoals renders savings goal progress.
func RenderGoals(theme themes.Theme, rows []dashboard.GoalRow) string {
	if len(rows) == 0 {
		return sectionBox(theme, "Savings Goals",
			theme.StatusPending.Render("No savings goals yet"))
	}

	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, lipgloss.JoinVertical(
			lipgloss.Left,
			theme.Normal.Render(fmt.Sprintf("%s  %s / %s", row.Name, moneyFor(row.Saved), moneyFor(row.Target))),
			goalBar(theme, row.Progress),
		))
	}

	return sectionBox(theme, "Savings Goals", lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func goalBar(theme themes.Theme, progress display.GoalProgress) string {
	filled := int(progress.Percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().
		Foreground(themes.ColorFor(progress.Color)).
		Render(strings.Repeat("█", filled))
	rest := theme.ProgressEmpty.Render(strings.Repeat("░", barWidth-filled))
	status := lipgloss.NewStyle().
		Foreground(themes.ColorFor(progress.Color)).
		Render(progress.Status)

	return fmt.Sprintf("%s%s %.0f%% · %s", bar, rest, progress.Percent, status)
}
