package itemform

import (
	"strings"
	"time"

	"github.com/colonyops/scopepad/internal/core/scope"
)

// Checklist editing operates on the draft's items field as an ordered
// sequence. Every operation rebuilds the whole slice and routes through the
// engine's single field-update primitive, so the items error clears the
// moment the user touches the list and no partial mutation is ever visible.

// AppendChecklistEntry adds a new entry with a fresh unique identity and
// completed=false. The text is trimmed; a blank add is a no-op.
func (f *Form) AppendChecklistEntry(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	entry := scope.ChecklistEntry{
		ID:   f.newID(),
		Text: trimmed,
	}

	f.engine.UpdateField(string(scope.FieldItems), func(d *scope.ItemDraft) {
		next := make([]scope.ChecklistEntry, 0, len(d.Checklist)+1)
		next = append(next, d.Checklist...)
		next = append(next, entry)
		d.Checklist = next
	})
}

// SetChecklistText replaces the text of the entry at index i. Out-of-range
// indexes and blank text are no-ops.
func (f *Form) SetChecklistText(i int, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	f.engine.UpdateField(string(scope.FieldItems), func(d *scope.ItemDraft) {
		if i < 0 || i >= len(d.Checklist) {
			return
		}
		next := append([]scope.ChecklistEntry(nil), d.Checklist...)
		next[i].Text = trimmed
		d.Checklist = next
	})
}

// SetChecklistCompleted flips the completed flag of the entry at index i,
// stamping or clearing its completion time. Out-of-range indexes are no-ops.
func (f *Form) SetChecklistCompleted(i int, completed bool) {
	f.engine.UpdateField(string(scope.FieldItems), func(d *scope.ItemDraft) {
		if i < 0 || i >= len(d.Checklist) {
			return
		}
		next := append([]scope.ChecklistEntry(nil), d.Checklist...)
		next[i].Completed = completed
		if completed {
			now := time.Now()
			next[i].CompletedAt = &now
		} else {
			next[i].CompletedAt = nil
		}
		d.Checklist = next
	})
}

// RemoveChecklistEntry deletes the entry at index i; later entries shift
// down by one position. Out-of-range indexes are no-ops.
func (f *Form) RemoveChecklistEntry(i int) {
	f.engine.UpdateField(string(scope.FieldItems), func(d *scope.ItemDraft) {
		if i < 0 || i >= len(d.Checklist) {
			return
		}
		next := make([]scope.ChecklistEntry, 0, len(d.Checklist)-1)
		next = append(next, d.Checklist[:i]...)
		next = append(next, d.Checklist[i+1:]...)
		d.Checklist = next
	})
}

// MoveChecklistEntry reorders the entry at index from to index to,
// preserving the relative order of the others. Out-of-range indexes are
// no-ops.
func (f *Form) MoveChecklistEntry(from, to int) {
	if from == to {
		return
	}

	f.engine.UpdateField(string(scope.FieldItems), func(d *scope.ItemDraft) {
		n := len(d.Checklist)
		if from < 0 || from >= n || to < 0 || to >= n {
			return
		}
		next := append([]scope.ChecklistEntry(nil), d.Checklist...)
		entry := next[from]
		next = append(next[:from], next[from+1:]...)

		rest := make([]scope.ChecklistEntry, 0, n)
		rest = append(rest, next[:to]...)
		rest = append(rest, entry)
		rest = append(rest, next[to:]...)
		d.Checklist = rest
	})
}
