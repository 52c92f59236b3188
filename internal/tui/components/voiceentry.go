// Package components holds the TUI building blocks: the static
// section renderers and the interactive voice entry form.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/finsight-cli/finsight/internal/model"
	"github.com/finsight-cli/finsight/internal/tui/themes"
	"github.com/finsight-cli/finsight/internal/voice"
	"github.com/shopspring/decimal"
)

const (
	fieldAmount = iota
	fieldCategory
	fieldType
	fieldCount
)

// VoiceEntryModel is the review form for a voice-captured draft. The
// outer model owns the flow; this component owns the editable fields
// and the modal rendering for each flow phase.
type VoiceEntryModel struct {
	theme   themes.Theme
	inputs  []textinput.Model
	spinner spinner.Model
	focus   int
	width   int
}

// NewVoiceEntryModel creates the form with empty fields.
func NewVoiceEntryModel(theme themes.Theme) VoiceEntryModel {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Focus()

	category := textinput.New()
	category.Placeholder = "Category"
	category.CharLimit = 50

	kind := textinput.New()
	kind.Placeholder = "expense or income"
	kind.CharLimit = 7

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return VoiceEntryModel{
		theme:   theme,
		inputs:  []textinput.Model{amount, category, kind},
		spinner: s,
	}
}

// SetDraft populates the fields from an interpreted draft.
func (m *VoiceEntryModel) SetDraft(draft model.VoiceDraft) {
	m.inputs[fieldAmount].SetValue(draft.Amount.String())
	m.inputs[fieldCategory].SetValue(draft.Category)
	m.inputs[fieldType].SetValue(string(draft.Type))
	m.setFocus(fieldAmount)
}

// Draft parses the current field values back into a draft.
func (m VoiceEntryModel) Draft() (model.VoiceDraft, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(m.inputs[fieldAmount].Value()))
	if err != nil {
		return model.VoiceDraft{}, fmt.Errorf("invalid amount %q", m.inputs[fieldAmount].Value())
	}

	kind := model.CategoryType(strings.ToLower(strings.TrimSpace(m.inputs[fieldType].Value())))
	if kind != model.TypeIncome && kind != model.TypeExpense {
		return model.VoiceDraft{}, fmt.Errorf("type must be income or expense, got %q", m.inputs[fieldType].Value())
	}

	category := strings.TrimSpace(m.inputs[fieldCategory].Value())
	if category == "" {
		return model.VoiceDraft{}, fmt.Errorf("category is required")
	}

	return model.VoiceDraft{
		Amount:   amount,
		Category: category,
		Type:     kind,
	}, nil
}

// Init starts the spinner tick.
func (m VoiceEntryModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles field navigation and typing.
func (m VoiceEntryModel) Update(msg tea.Msg) (VoiceEntryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// Resize sets the rendering width.
func (m *VoiceEntryModel) Resize(width int) {
	m.width = width
}

func (m *VoiceEntryModel) setFocus(index int) {
	m.focus = index
	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// View renders the modal for the given flow phase.
func (m VoiceEntryModel) View(state voice.State, transcript, errText string) string {
	var body string

	switch state {
	case voice.StateListening:
		body = fmt.Sprintf("%s Listening… speak your transaction", m.spinner.View())
	case voice.StateTranscribing:
		body = fmt.Sprintf("%s Interpreting %q", m.spinner.View(), transcript)
	case voice.StateSubmitting:
		body = fmt.Sprintf("%s Saving transaction…", m.spinner.View())
	case voice.StateAwaitingConfirmation:
		body = m.formView(transcript)
	case voice.StateDone:
		body = m.theme.StatusSuccess.Render("✓ Transaction saved")
	default:
		body = m.theme.StatusPending.Render("Press v to start a voice entry")
	}

	if errText != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.theme.StatusError.Render(errText))
	}

	title := m.theme.Title.Render("🎤 Voice Entry")
	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m VoiceEntryModel) formView(transcript string) string {
	labels := []string{"Amount", "Category", "Type"}

	rows := make([]string, 0, fieldCount+2)
	if transcript != "" {
		rows = append(rows, m.theme.Italic.Render(fmt.Sprintf("Heard: %q", transcript)))
	}
	for i, input := range m.inputs {
		label := m.theme.Normal.Render(fmt.Sprintf("%-9s", labels[i]))
		if i == m.focus {
			label = m.theme.Bold.Render(fmt.Sprintf("%-9s", labels[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, input.View()))
	}
	rows = append(rows, m.theme.Subtitle.Render("Enter to save · Esc to discard · Tab to move"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
