// Package tui implements the interactive dashboard: a full-screen
// view over every dashboard section plus the voice entry modal.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/tui/components"
	"github.com/finsight-cli/finsight/internal/tui/themes"
	"github.com/finsight-cli/finsight/internal/voice"
)

// Backend is the API surface the TUI needs: the dashboard reads plus
// the two voice endpoints.
type Backend interface {
	dashboard.API
	voice.Interpreter
	voice.Confirmer
}

// State represents the current state of the TUI.
type State int

const (
	StateDashboard State = iota
	StateVoice
	StateHelp
)

// Model holds the main TUI state.
type Model struct {
	backend    Backend
	recognizer voice.Recognizer
	flow       *voice.Flow
	snapshot   *dashboard.Snapshot
	lastError  error
	status     string
	voiceError string
	theme      themes.Theme
	keymap     KeyMap
	voiceForm  components.VoiceEntryModel
	spinner    spinner.Model
	level      statusLevel
	generation int
	width      int
	height     int
	state      State
	voiceReady bool
	loading    bool
	quitting   bool
	ready      bool
}

// Config holds the dependencies for the dashboard TUI.
type Config struct {
	Backend    Backend
	Recognizer voice.Recognizer
	Theme      string
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	theme := themes.GetTheme(cfg.Theme)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		backend:    cfg.Backend,
		recognizer: cfg.Recognizer,
		flow:       voice.NewFlow(cfg.Recognizer, cfg.Backend, cfg.Backend),
		theme:      theme,
		keymap:     DefaultKeyMap(),
		voiceForm:  components.NewVoiceEntryModel(theme),
		spinner:    s,
		state:      StateDashboard,
		voiceReady: cfg.Recognizer != nil && cfg.Recognizer.Available(),
		loading:    true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		m.loadSnapshot(m.generation),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.voiceForm.Resize(msg.Width)
		return m, nil

	case snapshotMsg:
		// A newer refresh is already in flight; this result is stale.
		if msg.generation != m.generation {
			return m, nil
		}
		// Failed sections keep the content they showed before the
		// refresh instead of collapsing to their empty states.
		msg.snapshot.MergePrevious(m.snapshot)
		m.snapshot = msg.snapshot
		m.loading = false
		m.ready = true
		return m, nil

	case transcriptMsg:
		return m.handleTranscript(msg)

	case draftReadyMsg:
		if msg.err != nil {
			m.state = StateDashboard
			return m, showStatus(statusError, msg.err.Error())
		}
		m.voiceForm.SetDraft(m.flow.Draft())
		m.voiceError = ""
		return m, nil

	case draftSavedMsg:
		if msg.err != nil {
			// The flow is back at the review step with edits intact.
			m.voiceError = msg.err.Error()
			return m, nil
		}
		return m.finishVoice(statusSuccess, "Transaction saved")

	case statusMsg:
		m.status = msg.text
		m.level = msg.level
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if m.state == StateVoice {
			m.voiceForm, cmd = m.voiceForm.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if m.state == StateVoice {
		var cmd tea.Cmd
		m.voiceForm, cmd = m.voiceForm.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keymap.ClearScreen) {
		return m, tea.ClearScreen
	}

	switch m.state {
	case StateHelp:
		if key.Matches(msg, m.keymap.Help) || key.Matches(msg, m.keymap.Cancel) || key.Matches(msg, m.keymap.Quit) {
			m.state = StateDashboard
		}
		return m, nil

	case StateVoice:
		return m.handleVoiceKey(msg)

	default:
		return m.handleDashboardKey(msg)
	}
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keymap.Voice):
		return m.startVoice()
	}
	return m, nil
}

func (m Model) handleVoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		if m.flow.State() == voice.StateAwaitingConfirmation {
			_ = m.flow.Cancel()
		}
		return m.finishVoice(statusInfo, "Voice entry discarded")

	case key.Matches(msg, m.keymap.Confirm):
		if m.flow.State() != voice.StateAwaitingConfirmation {
			return m, nil
		}
		draft, err := m.voiceForm.Draft()
		if err != nil {
			m.voiceError = err.Error()
			return m, nil
		}
		if err := m.flow.UpdateDraft(draft); err != nil {
			m.voiceError = err.Error()
			return m, nil
		}
		m.voiceError = ""
		return m, m.confirmDraft()
	}

	var cmd tea.Cmd
	m.voiceForm, cmd = m.voiceForm.Update(msg)
	return m, cmd
}

func (m Model) handleTranscript(msg transcriptMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		err := m.flow.RecognitionFailed(msg.err)
		m.state = StateDashboard
		return m, showStatus(statusError, err.Error())
	}
	if err := m.flow.SetTranscript(msg.transcript); err != nil {
		m.state = StateDashboard
		return m, showStatus(statusError, err.Error())
	}
	return m, m.interpret()
}

// refresh starts a new snapshot load, invalidating any in-flight one.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.generation++
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.loadSnapshot(m.generation))
}

func (m Model) startVoice() (tea.Model, tea.Cmd) {
	if err := m.flow.Start(); err != nil {
		if errors.Is(err, voice.ErrUnavailable) {
			return m, showStatus(statusError, "Voice input is not available on this system")
		}
		return m, showStatus(statusError, err.Error())
	}
	m.state = StateVoice
	m.voiceError = ""
	return m, tea.Batch(m.voiceForm.Init(), m.listen())
}

// finishVoice leaves the voice modal with a fresh flow so the next
// capture starts from idle, then refreshes the dashboard.
func (m Model) finishVoice(level statusLevel, text string) (tea.Model, tea.Cmd) {
	m.flow = voice.NewFlow(m.recognizer, m.backend, m.backend)
	m.voiceForm = components.NewVoiceEntryModel(m.theme)
	m.state = StateDashboard
	m.voiceError = ""

	refreshed, cmd := m.refresh()
	return refreshed, tea.Batch(cmd, showStatus(level, text))
}
