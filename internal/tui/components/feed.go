package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/display"
	"github.com/finsight-cli/finsight/internal/tui/themes"
	"github.com/shopspring/decimal"
)

// moneyFor keeps the section renderers on one money format.
func moneyFor(amount decimal.Decimal) string {
	return display.Money(amount)
}

// RenderFeed renders the recent transactions list.
func RenderFeed(theme themes.Theme, items []dashboard.FeedItem) string {
	if len(items) == 0 {
		return sectionBox(theme, "Recent Transactions",
			theme.StatusPending.Render("No transactions yet"))
	}

	rows := make([]string, 0, len(items))
	for _, item := range items {
		icon := theme.CategoryIcon.Render(item.Token.Icon)
		amount := lipgloss.NewStyle().
			Foreground(themes.ColorFor(amountColor(item))).
			Render(display.SignedMoney(item.Amount, item.Income))

		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			icon,
			lipgloss.JoinVertical(
				lipgloss.Left,
				theme.Normal.Render(item.Title),
				theme.Subtitle.Render(item.Subtitle),
			),
			"  ",
			amount,
		))
	}

	return sectionBox(theme, "Recent Transactions", lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func amountColor(item dashboard.FeedItem) display.Color {
	if item.Income {
		return display.Green
	}
	return display.Red
}

func sectionBox(theme themes.Theme, title, body string) string {
	return theme.RoundedBox.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		theme.Title.Render(title),
		body,
	))
}
