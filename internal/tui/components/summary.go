package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/tui/themes"
)

// RenderSummary renders the summary tiles and the health panel.
func RenderSummary(theme themes.Theme, view dashboard.SummaryView) string {
	tiles := make([]string, 0, len(view.Tiles))
	for _, tile := range view.Tiles {
		change := lipgloss.NewStyle().
			Foreground(themes.ColorFor(tile.Change.Color())).
			Render(tile.Change.String())

		tiles = append(tiles, theme.RoundedBox.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			theme.Subtitle.Render(tile.Label),
			theme.Bold.Render(moneyFor(tile.Amount)),
			change,
		)))
	}

	health := theme.RoundedBox.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		theme.Subtitle.Render("Financial Health"),
		lipgloss.NewStyle().
			Foreground(themes.ColorFor(view.HealthColor)).
			Bold(true).
			Render(healthText(view)),
		theme.Normal.Render(fmt.Sprintf("Savings rate %.0f%% · Debt ratio %.0f%%", view.SavingsRate, view.DebtRatio)),
	))

	return lipgloss.JoinHorizontal(lipgloss.Top, append(tiles, health)...)
}

func healthText(view dashboard.SummaryView) string {
	if view.HealthLabel == "" {
		return "No data yet"
	}
	return fmt.Sprintf("%s (%.0f)", view.HealthLabel, view.HealthScore)
}
