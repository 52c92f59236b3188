package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/model"
	"github.com/finsight-cli/finsight/internal/tui/themes"
)

// RenderBills renders upcoming recurring payments.
func RenderBills(theme themes.Theme, bills []model.Bill) string {
	if len(bills) == 0 {
		return sectionBox(theme, "Upcoming Bills",
			theme.StatusPending.Render("No upcoming bills"))
	}

	rows := make([]string, 0, len(bills))
	for _, bill := range bills {
		due := theme.Subtitle.Render(dueText(bill))
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			theme.Normal.Render(fmt.Sprintf("%-20s", bill.Name)),
			theme.Bold.Render(moneyFor(bill.Amount)),
			"  ",
			due,
		))
	}

	return sectionBox(theme, "Upcoming Bills", lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func dueText(bill model.Bill) string {
	switch {
	case bill.DaysRemaining < 0:
		return "overdue"
	case bill.DaysRemaining == 0:
		return "due today"
	case bill.DaysRemaining == 1:
		return "due tomorrow"
	default:
		return fmt.Sprintf("due in %d days", bill.DaysRemaining)
	}
}

// RenderNotifications renders the notification list.
func RenderNotifications(theme themes.Theme, notifications []model.Notification) string {
	if len(notifications) == 0 {
		return sectionBox(theme, "Notifications",
			theme.StatusPending.Render("Nothing new"))
	}

	rows := make([]string, 0, len(notifications))
	for _, n := range notifications {
		row := theme.Normal.Render(n.Title)
		if n.Message != "" {
			row = lipgloss.JoinVertical(lipgloss.Left, row, theme.Subtitle.Render(n.Message))
		}
		rows = append(rows, row)
	}

	return sectionBox(theme, "Notifications", lipgloss.JoinVertical(lipgloss.Left, rows...))
}
