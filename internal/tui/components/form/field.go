// Package form provides the TUI field components and the dialog that hosts
// an item editing session.
package form

import tea "github.com/charmbracelet/bubbletea"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Name() string  // engine field name, used to look up validation errors
	Label() string // display label for the field
}
