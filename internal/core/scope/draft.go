package scope

import (
	"slices"
	"time"
)

// ItemDraft is the transient, client-held edit state of an item before
// submission. Any subset of fields may be empty. A draft is a value; the
// form engine replaces it wholesale on every field update.
type ItemDraft struct {
	Title     string
	Content   string
	URL       string
	Priority  Priority
	Status    Status
	DueAt     *time.Time
	Checklist []ChecklistEntry
	Tags      []string
}

// DraftFromItem seeds a draft from an existing item for edit mode.
//
// Content falls back across the two legacy storage locations: the explicit
// Notes field wins, then the metadata content blob. The checklist prefers
// the first-class Checklist field over a legacy metadata-embedded list. In
// both cases first non-empty wins; the metadata copies are read-only legacy
// input and are never merged.
func DraftFromItem(it Item) ItemDraft {
	d := ItemDraft{
		Title:    it.Title,
		Priority: it.Priority,
		Status:   it.Status,
		DueAt:    it.DueAt,
		Tags:     slices.Clone(it.Tags),
	}

	d.Content = it.Notes
	if d.Content == "" {
		d.Content = MetadataContent(it.Metadata)
	}

	d.URL = MetadataURL(it.Metadata)

	if len(it.Checklist) > 0 {
		d.Checklist = slices.Clone(it.Checklist)
	} else {
		d.Checklist = slices.Clone(MetadataChecklist(it.Metadata))
	}

	return d
}
