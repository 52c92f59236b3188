package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/tui/components"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.theme.Box.Render(fmt.Sprintf("%s Loading your dashboard…", m.spinner.View()))
	}

	switch m.state {
	case StateHelp:
		return m.renderHelp()
	case StateVoice:
		return m.renderVoice()
	default:
		return m.renderDashboard()
	}
}

func (m Model) renderDashboard() string {
	sections := []string{
		m.renderHeader(),
		components.RenderSummary(m.theme, m.snapshot.Summary),
	}

	feed := components.RenderFeed(m.theme, m.snapshot.Feed)
	budgets := components.RenderBudgets(m.theme, m.snapshot.Budgets, m.snapshot.Warnings, m.snapshot.Failed("budget-warnings"))
	spending := components.RenderSpending(m.theme, m.snapshot.Spending)
	insights := components.RenderInsights(m.theme, m.snapshot.Insights, m.snapshot.InsightNote)
	goals := components.RenderGoals(m.theme, m.snapshot.Goals)
	bills := components.RenderBills(m.theme, m.snapshot.Bills)
	notifications := components.RenderNotifications(m.theme, m.snapshot.Notifications)

	if m.width >= 120 {
		sections = append(sections,
			lipgloss.JoinHorizontal(lipgloss.Top, feed, budgets, spending),
			lipgloss.JoinHorizontal(lipgloss.Top, insights, goals),
			lipgloss.JoinHorizontal(lipgloss.Top, bills, notifications),
		)
	} else {
		sections = append(sections, feed, budgets, spending, insights, goals, bills, notifications)
	}

	sections = append(sections, m.renderStatusLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("Finsight")

	var failures string
	if len(m.snapshot.Errors) > 0 {
		names := make([]string, 0, len(m.snapshot.Errors))
		for name := range m.snapshot.Errors {
			names = append(names, name)
		}
		failures = m.theme.StatusWarning.Render(
			fmt.Sprintf("  some sections failed to load: %s", strings.Join(names, ", ")))
	}

	loading := ""
	if m.loading {
		loading = "  " + m.spinner.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, loading, failures)
}

func (m Model) renderVoice() string {
	modal := m.voiceForm.View(m.flow.State(), m.flow.Transcript(), m.voiceError)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), modal, m.renderStatusLine())
}

func (m Model) renderHelp() string {
	var rows []string
	rows = append(rows, m.theme.Title.Render("Keyboard Shortcuts"))
	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			rows = append(rows, fmt.Sprintf("%s  %s",
				m.theme.Bold.Render(fmt.Sprintf("%-12s", help.Key)),
				m.theme.Normal.Render(help.Desc),
			))
		}
		rows = append(rows, "")
	}
	rows = append(rows, m.theme.Subtitle.Render("Press ? to return"))

	return m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderStatusLine() string {
	if m.status == "" {
		hints := "r refresh · v voice entry · ? help · q quit"
		if !m.voiceReady {
			hints = "r refresh · ? help · q quit"
		}
		return m.theme.Subtitle.Render(hints)
	}

	style := m.theme.StatusInfo
	switch m.level {
	case statusSuccess:
		style = m.theme.StatusSuccess
	case statusError:
		style = m.theme.StatusError
	}
	return style.Render(m.status)
}
