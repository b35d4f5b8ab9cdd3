package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/scopepad/internal/core/styles"
)

// TextField is a single-line text input bound to one engine field. Every
// keystroke is pushed through onChange so the engine clears that field's
// error as the user types.
type TextField struct {
	input    textinput.Model
	name     string
	label    string
	focused  bool
	onChange func(string)
	errFor   func() string
}

// NewTextField creates a single-line input field. errFor returns the current
// validation error for the field, or empty.
func NewTextField(name, label, placeholder, initial string, onChange func(string), errFor func() string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	ti.SetValue(initial)

	return &TextField{
		input:    ti,
		name:     name,
		label:    label,
		onChange: onChange,
		errFor:   errFor,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before && f.onChange != nil {
		f.onChange(f.input.Value())
	}
	return f, cmd
}

func (f *TextField) View() string {
	labelStyle := styles.Label
	if f.focused {
		labelStyle = styles.LabelFocused
	}

	parts := []string{labelStyle.Render(f.label), f.input.View()}
	if msg := f.errFor(); msg != "" {
		parts = append(parts, styles.ErrorText.Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Focused() bool { return f.focused }
func (f *TextField) Name() string  { return f.name }
func (f *TextField) Label() string { return f.label }

// Value returns the current input text.
func (f *TextField) Value() string { return f.input.Value() }
