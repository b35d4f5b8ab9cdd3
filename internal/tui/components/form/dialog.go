package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/scopepad/internal/core/itemform"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/core/styles"
)

// Dialog hosts the fields for one item editing session. Which inputs appear
// is driven by the scope type's required fields; priority and status are
// always offered.
type Dialog struct {
	form         *itemform.Form
	fields       []Field
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
}

// NewItemDialog builds the field set for the form's scope type and focuses
// the first field.
func NewItemDialog(title string, f *itemform.Form) *Dialog {
	t := f.ScopeType()
	draft := f.Draft()

	fields := []Field{
		NewTextField(
			string(scope.FieldTitle), "Title", "what is this about?", draft.Title,
			f.SetTitle,
			func() string { return f.FieldError(scope.FieldTitle) },
		),
	}

	if scope.Requires(t, scope.FieldContent) {
		fields = append(fields, NewTextAreaField(
			string(scope.FieldContent), "Content", "write it down", draft.Content,
			f.SetContent,
			func() string { return f.FieldError(scope.FieldContent) },
		))
	}

	if scope.Requires(t, scope.FieldURL) {
		fields = append(fields, NewTextField(
			string(scope.FieldURL), "URL", "https://", draft.URL,
			f.SetURL,
			func() string { return f.FieldError(scope.FieldURL) },
		))
	}

	if scope.Requires(t, scope.FieldItems) {
		fields = append(fields, NewChecklistField(f))
	}

	priorities := []string{""}
	for _, p := range scope.Priorities() {
		priorities = append(priorities, string(p))
	}
	fields = append(fields, NewSelectField(
		"priority", "Priority", priorities, string(draft.Priority),
		func(v string) { f.SetPriority(scope.Priority(v)) },
	))

	statuses := make([]string, 0, 5)
	for _, s := range scope.Statuses() {
		statuses = append(statuses, string(s))
	}
	fields = append(fields, NewSelectField(
		"status", "Status", statuses, string(draft.Status),
		func(v string) { f.SetStatus(scope.Status(v)) },
	))

	d := &Dialog{form: f, fields: fields, Title: title}
	fields[0].Focus()
	return d
}

// Update handles key input, managing focus cycling and submit/cancel intent.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "ctrl+s":
		d.submitted = true
		return d, nil
	case "enter":
		if d.enterBelongsToField() {
			return d.updateFocusedField(msg)
		}
		return d.advanceFocus()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically with the general error and help line.
func (d *Dialog) View() string {
	parts := []string{styles.Title.Render(d.Title)}
	for _, field := range d.fields {
		parts = append(parts, "", field.View())
	}

	if msg := d.form.GeneralError(); msg != "" {
		parts = append(parts, "", styles.ErrorText.Render(msg))
	}
	if d.form.Submitting() {
		parts = append(parts, "", styles.Help.Render("saving..."))
	}

	help := styles.Help.Render("tab: next  shift+tab: prev  ctrl+s: save  esc: cancel")
	parts = append(parts, "", help)

	return styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Submitted reports whether the user asked to submit. The host model resets
// it once the submission has been dispatched.
func (d *Dialog) Submitted() bool { return d.submitted }

// ResetSubmitted clears the submit intent after dispatch.
func (d *Dialog) ResetSubmitted() { d.submitted = false }

// Cancelled reports whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Form returns the hosted item form.
func (d *Dialog) Form() *itemform.Form { return d.form }

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	next := d.focusedField + 1
	if next >= len(d.fields) {
		// Past the last field, treat as submit intent
		d.submitted = true
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField = next
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if d.focusedField == 0 {
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField--
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

// enterBelongsToField reports whether the focused field consumes enter
// itself: textareas insert newlines, checklists append entries.
func (d *Dialog) enterBelongsToField() bool {
	switch d.fields[d.focusedField].(type) {
	case *TextAreaField, *ChecklistField:
		return true
	}
	return false
}
