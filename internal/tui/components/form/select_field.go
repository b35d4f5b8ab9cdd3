package form

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/scopepad/internal/core/styles"
)

// SelectField cycles through a fixed set of options with left/right keys.
// An empty option renders as "(none)".
type SelectField struct {
	options  []string
	selected int
	name     string
	label    string
	focused  bool
	onChange func(string)
}

// NewSelectField creates a select field. If initial is not among the
// options, the first option is selected.
func NewSelectField(name, label string, options []string, initial string, onChange func(string)) *SelectField {
	selected := 0
	for i, opt := range options {
		if opt == initial {
			selected = i
			break
		}
	}

	return &SelectField{
		options:  options,
		selected: selected,
		name:     name,
		label:    label,
		onChange: onChange,
	}
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		f.selected = (f.selected - 1 + len(f.options)) % len(f.options)
	case "right", "l", " ":
		f.selected = (f.selected + 1) % len(f.options)
	default:
		return f, nil
	}

	if f.onChange != nil {
		f.onChange(f.Value())
	}
	return f, nil
}

func (f *SelectField) View() string {
	labelStyle := styles.Label
	if f.focused {
		labelStyle = styles.LabelFocused
	}

	value := f.Value()
	if value == "" {
		value = "(none)"
	}
	display := fmt.Sprintf("‹ %s ›", value)
	if f.focused {
		display = styles.Pill.Render(display)
	}

	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(f.label), display)
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur()         { f.focused = false }
func (f *SelectField) Focused() bool { return f.focused }
func (f *SelectField) Name() string  { return f.name }
func (f *SelectField) Label() string { return f.label }

// Value returns the selected option.
func (f *SelectField) Value() string {
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.selected]
}
