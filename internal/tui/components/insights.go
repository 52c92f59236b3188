package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/tui/themes"
)

// RenderInsights renders the AI insight cards, or the placeholder when
// the backend had nothing beyond a general note.
func RenderInsights(theme themes.Theme, cards []dashboard.InsightCard, note string) string {
	if note != "" {
		return sectionBox(theme, "AI Insights", theme.StatusPending.Render(note))
	}

	rows := make([]string, 0, len(cards))
	for _, card := range cards {
		title := lipgloss.NewStyle().
			Foreground(themes.ColorFor(card.Color)).
			Bold(card.Warning).
			Render(fmt.Sprintf("%s %s", card.Icon, card.Title))

		row := []string{title}
		if card.Description != "" {
			row = append(row, theme.Normal.Render(card.Description))
		}
		if card.Details != "" {
			row = append(row, theme.Subtitle.Render(card.Details))
		}
		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left, row...))
	}

	return sectionBox(theme, "AI Insights", lipgloss.JoinVertical(lipgloss.Left, rows...))
}
