package form

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/scopepad/internal/core/itemform"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/core/styles"
)

// ChecklistField edits an item's checklist through the form's checklist
// operations, so every mutation flows through the engine's field-update
// primitive. It holds no copy of the entries.
type ChecklistField struct {
	form    *itemform.Form
	input   textinput.Model
	cursor  int
	focused bool
}

// NewChecklistField creates a checklist editor bound to the given form.
func NewChecklistField(f *itemform.Form) *ChecklistField {
	ti := textinput.New()
	ti.Placeholder = "add an entry, enter to append"
	ti.Prompt = "+ "
	ti.Width = 40

	return &ChecklistField{form: f, input: ti}
}

func (f *ChecklistField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}

	entries := f.form.Draft().Checklist

	switch keyMsg.String() {
	case "enter":
		f.form.AppendChecklistEntry(f.input.Value())
		f.input.SetValue("")
		return f, nil
	case "up":
		if f.cursor > 0 {
			f.cursor--
		}
		return f, nil
	case "down":
		if f.cursor < len(entries)-1 {
			f.cursor++
		}
		return f, nil
	case "ctrl+up":
		f.form.MoveChecklistEntry(f.cursor, f.cursor-1)
		if f.cursor > 0 {
			f.cursor--
		}
		return f, nil
	case "ctrl+down":
		f.form.MoveChecklistEntry(f.cursor, f.cursor+1)
		if f.cursor < len(entries)-1 {
			f.cursor++
		}
		return f, nil
	case "ctrl+t":
		if f.cursor < len(entries) {
			f.form.SetChecklistCompleted(f.cursor, !entries[f.cursor].Completed)
		}
		return f, nil
	case "ctrl+x":
		f.form.RemoveChecklistEntry(f.cursor)
		if f.cursor > 0 && f.cursor >= len(f.form.Draft().Checklist) {
			f.cursor--
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *ChecklistField) View() string {
	labelStyle := styles.Label
	if f.focused {
		labelStyle = styles.LabelFocused
	}

	parts := []string{labelStyle.Render(f.Label())}

	for i, entry := range f.form.Draft().Checklist {
		mark := "[ ]"
		if entry.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, entry.Text)
		if f.focused && i == f.cursor {
			line = styles.LabelFocused.Render("> " + line)
		} else {
			line = "  " + line
		}
		parts = append(parts, line)
	}

	parts = append(parts, f.input.View())

	if msg := f.form.FieldError(scope.FieldItems); msg != "" {
		parts = append(parts, styles.ErrorText.Render(msg))
	}
	if f.focused {
		parts = append(parts, styles.Help.Render("ctrl+t: toggle  ctrl+x: remove  ctrl+↑/↓: reorder"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (f *ChecklistField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *ChecklistField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *ChecklistField) Focused() bool { return f.focused }
func (f *ChecklistField) Name() string  { return string(scope.FieldItems) }
func (f *ChecklistField) Label() string { return "Checklist" }
