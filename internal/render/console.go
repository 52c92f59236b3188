// Package render prints the dashboard snapshot as plain console
// output for the --plain flag and non-interactive terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/display"
	"github.com/pterm/pterm"
)

const consoleBarWidth = 30

// ansiColors maps display color classes onto terminal colors.
var ansiColors = map[display.Color]*color.Color{
	display.Green:  color.New(color.FgGreen, color.Bold),
	display.Red:    color.New(color.FgRed, color.Bold),
	display.Blue:   color.New(color.FgBlue, color.Bold),
	display.Yellow: color.New(color.FgYellow, color.Bold),
	display.Gray:   color.New(color.FgHiBlack),
	display.Purple: color.New(color.FgMagenta, color.Bold),
	display.Orange: color.New(color.FgYellow),
	display.Indigo: color.New(color.FgBlue),
	display.Teal:   color.New(color.FgCyan, color.Bold),
	display.Pink:   color.New(color.FgHiMagenta),
}

func paint(c display.Color, text string) string {
	if painter, ok := ansiColors[c]; ok {
		return painter.Sprint(text)
	}
	return text
}

// Dashboard prints the full snapshot section by section.
func Dashboard(snap *dashboard.Snapshot) {
	Summary(snap)
	Spending(snap)
	Feed(snap)
	Budgets(snap)
	Insights(snap)
	Goals(snap)
	Bills(snap)
	Notifications(snap)

	for section, err := range snap.Errors {
		pterm.Warning.Printfln("section %s failed to load: %s", section, err)
	}
}

// Summary prints the summary tiles and health line.
func Summary(snap *dashboard.Snapshot) {
	if snap.Failed("summary") {
		return
	}
	view := snap.Summary

	tableData := pterm.TableData{{"Metric", "Amount", "Change"}}
	for _, tile := range view.Tiles {
		tableData = append(tableData, []string{
			tile.Label,
			display.Money(tile.Amount),
			paint(tile.Change.Color(), tile.Change.String()),
		})
	}

	table, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	fmt.Println(pterm.DefaultBox.WithTitle("Overview").Sprint(table))

	health := "No data yet"
	if view.HealthLabel != "" {
		health = fmt.Sprintf("%s (%.0f)", view.HealthLabel, view.HealthScore)
	}
	fmt.Printf("Financial health: %s · savings rate %.0f%% · debt ratio %.0f%%\n\n",
		paint(view.HealthColor, health), view.SavingsRate, view.DebtRatio)
}

// Spending prints income and expense bars per period.
func Spending(snap *dashboard.Snapshot) {
	if snap.Failed("spending") || len(snap.Spending.Months) == 0 {
		return
	}

	peak := 0.0
	for i := range snap.Spending.Months {
		if v := seriesAt(snap.Spending.Income, i); v > peak {
			peak = v
		}
		if v := seriesAt(snap.Spending.Expenses, i); v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	tableData := pterm.TableData{{"Month", "Income", "", "Expenses", ""}}
	for i, month := range snap.Spending.Months {
		income := seriesAt(snap.Spending.Income, i)
		expenses := seriesAt(snap.Spending.Expenses, i)
		tableData = append(tableData, []string{
			month,
			fmt.Sprintf("%.2f", income),
			paint(display.Green, bar(income, peak)),
			fmt.Sprintf("%.2f", expenses),
			paint(display.Red, bar(expenses, peak)),
		})
	}

	table, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	fmt.Println(pterm.DefaultBox.WithTitle("Spending Analysis").Sprint(table))
}

// Feed prints the recent transactions.
func Feed(snap *dashboard.Snapshot) {
	if snap.Failed("transactions") {
		return
	}
	if len(snap.Feed) == 0 {
		pterm.Info.Println("No transactions yet")
		return
	}

	tableData := pterm.TableData{{"", "Transaction", "Category", "Amount"}}
	for _, item := range snap.Feed {
		amountColor := display.Red
		if item.Income {
			amountColor = display.Green
		}
		tableData = append(tableData, []string{
			item.Token.Icon,
			item.Title,
			item.Subtitle,
			paint(amountColor, display.SignedMoney(item.Amount, item.Income)),
		})
	}

	table, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	fmt.Println(pterm.DefaultBox.WithTitle("Recent Transactions").Sprint(table))
}

// Budgets prints utilization bars and overspend warnings.
func Budgets(snap *dashboard.Snapshot) {
	if snap.Failed("budgets") {
		return
	}
	if len(snap.Budgets) == 0 {
		pterm.Info.Println("No budgets configured")
		return
	}

	tableData := pterm.TableData{{"Category", "Spent / Limit", "Utilization"}}
	for _, row := range snap.Budgets {
		tableData = append(tableData, []string{
			row.Category,
			fmt.Sprintf("%s / %s", display.Money(row.Spent), display.Money(row.Limit)),
			fmt.Sprintf("%s %.0f%%", paint(row.Color, bar(row.Percent, 100)), row.Percent),
		})
	}

	table, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	fmt.Println(pterm.DefaultBox.WithTitle("Budgets").Sprint(table))

	if snap.Failed("budget-warnings") {
		return
	}
	if len(snap.Warnings) == 0 {
		pterm.Success.Println("Your budget is optimized")
		return
	}
	for _, warning := range snap.Warnings {
		pterm.Warning.Printfln("%s is trending over budget: %s (suggested limit %s)",
			warning.Category, warning.Recommendation, display.Money(warning.SuggestedLimit))
	}
}

// Insights prints the AI insight cards.
func Insights(snap *dashboard.Snapshot) {
	if snap.Failed("insights") {
		return
	}
	if snap.InsightNote != "" {
		pterm.Info.Println(snap.InsightNote)
		return
	}

	var lines []string
	for _, card := range snap.Insights {
		line := fmt.Sprintf("%s %s", card.Icon, paint(card.Color, card.Title))
		if card.Description != "" {
			line += "\n  " + card.Description
		}
		if card.Details != "" {
			line += "\n  " + pterm.FgGray.Sprint(card.Details)
		}
		lines = append(lines, line)
	}

	fmt.Println(pterm.DefaultBox.WithTitle("AI Insights").Sprint(strings.Join(lines, "\n")))
}

// Goals prints savings goal progress.
func Goals(snap *dashboard.Snapshot) {
	if snap.Failed("goals") || len(snap.Goals) == 0 {
		return
	}

	tableData := pterm.TableData{{"Goal", "Saved / Target", "Progress", "Status"}}
	for _, row := range snap.Goals {
		tableData = append(tableData, []string{
			row.Name,
			fmt.Sprintf("%s / %s", display.Money(row.Saved), display.Money(row.Target)),
			fmt.Sprintf("%s %.0f%%", paint(row.Progress.Color, bar(row.Progress.Percent, 100)), row.Progress.Percent),
			paint(row.Progress.Color, row.Progress.Status),
		})
	}

	table, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	fmt.Println(pterm.DefaultBox.WithTitle("Savings Goals").Sprint(table))
}

// Bills prints upcoming recurring payments.
func Bills(snap *dashboard.Snapshot) {
	if snap.Failed("bills") || len(snap.Bills) == 0 {
		return
	}

	tableData := pterm.TableData{{"Bill", "Amount", "Due"}}
	for _, bill := range snap.Bills {
		due := fmt.Sprintf("in %d days", bill.DaysRemaining)
		switch {
		case bill.DaysRemaining < 0:
			due = paint(display.Red, "overdue")
		case bill.DaysRemaining == 0:
			due = paint(display.Yellow, "today")
		}
		tableData = append(tableData, []string{bill.Name, display.Money(bill.Amount), due})
	}

	table, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	fmt.Println(pterm.DefaultBox.WithTitle("Upcoming Bills").Sprint(table))
}

// Notifications prints unread notifications.
func Notifications(snap *dashboard.Snapshot) {
	if snap.Failed("notifications") || len(snap.Notifications) == 0 {
		return
	}
	for _, n := range snap.Notifications {
		if n.Message != "" {
			pterm.Info.Printfln("%s: %s", n.Title, n.Message)
		} else {
			pterm.Info.Println(n.Title)
		}
	}
}

func bar(value, peak float64) string {
	filled := int(value / peak * consoleBarWidth)
	if filled > consoleBarWidth {
		filled = consoleBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", consoleBarWidth-filled)
}

func seriesAt(series []float64, i int) float64 {
	if i >= len(series) {
		return 0
	}
	return series[i]
}
