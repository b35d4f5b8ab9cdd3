// Package tui implements the interactive item editor.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/scopepad/internal/core/itemform"
	formui "github.com/colonyops/scopepad/internal/tui/components/form"
)

// submitDoneMsg carries the outcome of an asynchronous form submission.
type submitDoneMsg struct {
	err error
}

// Model hosts the item form dialog.
type Model struct {
	dialog *formui.Dialog
	done   bool
	Err    error
}

// New creates the editor model for the given form.
func New(title string, f *itemform.Form) Model {
	return Model{dialog: formui.NewItemDialog(title, f)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		if msg.err != nil {
			// The form re-renders with its general error set.
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.dialog.Form().Cancel()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	if m.dialog.Cancelled() {
		m.dialog.Form().Cancel()
		return m, tea.Quit
	}

	if m.dialog.Submitted() {
		m.dialog.ResetSubmitted()
		f := m.dialog.Form()
		return m, tea.Batch(cmd, func() tea.Msg {
			return submitDoneMsg{err: f.Submit(context.Background())}
		})
	}

	return m, cmd
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	return m.dialog.View()
}

// Saved reports whether the editing session ended with a successful submit.
func (m Model) Saved() bool { return m.done }
