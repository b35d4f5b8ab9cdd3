package form

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/scopepad/internal/core/styles"
)

// TextAreaField is a multi-line text input bound to one engine field.
type TextAreaField struct {
	input    textarea.Model
	name     string
	label    string
	focused  bool
	onChange func(string)
	errFor   func() string
}

// NewTextAreaField creates a multi-line input field.
func NewTextAreaField(name, label, placeholder, initial string, onChange func(string), errFor func() string) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.SetValue(initial)

	return &TextAreaField{
		input:    ta,
		name:     name,
		label:    label,
		onChange: onChange,
		errFor:   errFor,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
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

func (f *TextAreaField) View() string {
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

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Focused() bool { return f.focused }
func (f *TextAreaField) Name() string  { return f.name }
func (f *TextAreaField) Label() string { return f.label }

// Value returns the current input text.
func (f *TextAreaField) Value() string { return f.input.Value() }
