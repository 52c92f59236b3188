package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/finsight-cli/finsight/internal/dashboard"
)

// loadSnapshot fetches all dashboard sections. The generation is
// echoed back so the model can discard results from a refresh that was
// superseded before it finished.
func (m Model) loadSnapshot(generation int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return snapshotMsg{
			snapshot:   dashboard.LoadSnapshot(ctx, m.backend, time.Now()),
			generation: generation,
		}
	}
}

// listen runs the recognizer until one utterance is captured.
func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		transcript, err := m.recognizer.Listen(ctx)
		return transcriptMsg{transcript: transcript, err: err}
	}
}

// interpret asks the backend to turn the transcript into a draft.
func (m Model) interpret() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return draftReadyMsg{err: m.flow.Interpret(ctx)}
	}
}

// confirmDraft submits the reviewed draft.
func (m Model) confirmDraft() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return draftSavedMsg{err: m.flow.Confirm(ctx)}
	}
}

// showStatus puts a message on the status line and schedules its
// removal.
func showStatus(level statusLevel, text string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return statusMsg{level: level, text: text} },
		tea.Tick(5*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} }),
	)
}
