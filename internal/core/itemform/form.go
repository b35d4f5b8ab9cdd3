// Package itemform is the composition root of the entry-form core: it wires
// the required-field registry, the draft validator, the checklist editor,
// and the item service together behind the generic form engine.
package itemform

import (
	"context"
	"time"

	"github.com/colonyops/scopepad/internal/core/eventbus"
	"github.com/colonyops/scopepad/internal/core/form"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/pkg/result"
	"github.com/google/uuid"
)

// Mode distinguishes creating a new item from editing an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Service is the narrow persistence seam the form depends on. Both
// operations return the uniform result envelope; the form never sees a raw
// transport error.
type Service interface {
	CreateItem(ctx context.Context, item scope.Item) result.Result[scope.Item]
	UpdateItem(ctx context.Context, id string, item scope.Item) result.Result[scope.Item]
}

// Form is one editing session for a single scope item. It exclusively owns
// the draft and the error map for its lifetime; the durable record belongs
// to the service. The form holds only a point-in-time copy, never a live
// reference to a stored record.
type Form struct {
	engine *form.Engine[scope.ItemDraft]
	svc    Service
	bus    *eventbus.EventBus

	scopeID   string
	scopeType scope.Type
	mode      Mode
	itemID    string // set in edit mode

	// newID generates checklist entry identities; injectable for tests.
	newID func() string
}

// New attaches a form to a scope. If existing is non-nil the form enters
// edit mode and the draft is seeded from a copy of that item; otherwise the
// draft starts empty in create mode.
func New(svc Service, bus *eventbus.EventBus, sc scope.Scope, existing *scope.Item) *Form {
	f := &Form{
		svc:       svc,
		bus:       bus,
		scopeID:   sc.ID,
		scopeType: sc.Type,
		mode:      ModeCreate,
		newID:     uuid.NewString,
	}
	f.engine = form.NewEngine[scope.ItemDraft](hooks{f})

	if existing != nil {
		f.mode = ModeEdit
		f.itemID = existing.ID
		f.engine.SetDraft(scope.DraftFromItem(*existing))
	}

	return f
}

// Mode returns whether the form creates or edits.
func (f *Form) Mode() Mode { return f.mode }

// ScopeType returns the type of the scope this form belongs to.
func (f *Form) ScopeType() scope.Type { return f.scopeType }

// RequiredFields returns the registry-driven field set for this form's
// scope type. The same list decides which inputs the rendering layer shows,
// so display and validation can never disagree.
func (f *Form) RequiredFields() []scope.Field {
	return scope.RequiredFields(f.scopeType)
}

// Draft returns the current draft snapshot.
func (f *Form) Draft() scope.ItemDraft { return f.engine.Draft() }

// Errors returns a snapshot of the current error map.
func (f *Form) Errors() form.Errors { return f.engine.Errors() }

// FieldError returns the error message for one field, or empty.
func (f *Form) FieldError(field scope.Field) string {
	return f.engine.FieldError(string(field))
}

// GeneralError returns the last submission failure message, or empty.
func (f *Form) GeneralError() string { return f.engine.Errors().General() }

// CanSubmit reports whether the draft currently passes validation.
func (f *Form) CanSubmit() bool { return f.engine.CanSubmit() }

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool { return f.engine.Submitting() }

// SetSubmitTimeout overrides the engine's per-submission timeout.
func (f *Form) SetSubmitTimeout(d time.Duration) { f.engine.SetSubmitTimeout(d) }

// SetTitle updates the draft title.
func (f *Form) SetTitle(title string) {
	f.engine.UpdateField(string(scope.FieldTitle), func(d *scope.ItemDraft) { d.Title = title })
}

// SetContent updates the draft content blob.
func (f *Form) SetContent(content string) {
	f.engine.UpdateField(string(scope.FieldContent), func(d *scope.ItemDraft) { d.Content = content })
}

// SetURL updates the draft link.
func (f *Form) SetURL(raw string) {
	f.engine.UpdateField(string(scope.FieldURL), func(d *scope.ItemDraft) { d.URL = raw })
}

// SetPriority updates the draft priority.
func (f *Form) SetPriority(p scope.Priority) {
	f.engine.UpdateField("priority", func(d *scope.ItemDraft) { d.Priority = p })
}

// SetStatus updates the draft status.
func (f *Form) SetStatus(s scope.Status) {
	f.engine.UpdateField("status", func(d *scope.ItemDraft) { d.Status = s })
}

// SetDueAt updates the draft due timestamp.
func (f *Form) SetDueAt(due *time.Time) {
	f.engine.UpdateField("due_at", func(d *scope.ItemDraft) { d.DueAt = due })
}

// SetTags replaces the draft tag set.
func (f *Form) SetTags(tags []string) {
	cloned := append([]string(nil), tags...)
	f.engine.UpdateField("tags", func(d *scope.ItemDraft) { d.Tags = cloned })
}

// Submit runs the validate-then-persist sequence. On success the concrete
// side effects run here: an item.created or item.updated event is emitted
// with the persisted record, and in create mode the draft resets to empty.
// Failures are recorded as the general error and returned to the caller.
func (f *Form) Submit(ctx context.Context) error {
	return f.engine.Submit(ctx)
}

// Cancel abandons the editing session and emits form.cancelled.
func (f *Form) Cancel() {
	if f.bus != nil {
		f.bus.PublishFormCancelled(eventbus.FormCancelledPayload{
			ScopeID: f.scopeID,
			ItemID:  f.itemID,
		})
	}
}

// hooks adapts Form to the engine's form.Form contract, keeping the
// lifecycle extension points separate from the public editing surface.
type hooks struct {
	f *Form
}

var _ form.Form[scope.ItemDraft] = hooks{}

// Validate delegates to the registry-driven draft validator for the form's
// scope type.
func (h hooks) Validate(d scope.ItemDraft, setErr func(field, msg string)) bool {
	return scope.ValidateDraft(h.f.scopeType, d, func(field scope.Field, msg string) {
		setErr(string(field), msg)
	})
}

// Submit builds the outbound record from the draft snapshot and invokes the
// create-or-update operation for the current mode.
func (h hooks) Submit(ctx context.Context, d scope.ItemDraft) error {
	f := h.f
	item := f.buildItem(d)

	var res result.Result[scope.Item]
	if f.mode == ModeEdit {
		res = f.svc.UpdateItem(ctx, f.itemID, item)
	} else {
		res = f.svc.CreateItem(ctx, item)
	}

	saved, err := res.Unwrap()
	if err != nil {
		return err
	}

	if f.bus != nil {
		if f.mode == ModeEdit {
			f.bus.PublishItemUpdated(eventbus.ItemUpdatedPayload{Item: &saved})
		} else {
			f.bus.PublishItemCreated(eventbus.ItemCreatedPayload{Item: &saved})
		}
	}

	if f.mode == ModeCreate {
		f.engine.SetDraft(scope.ItemDraft{})
	}

	return nil
}

// buildItem combines the flat draft fields with a metadata envelope
// re-derived from the scope type. Content lives canonically in Notes and
// the checklist in the first-class field; the metadata copies exist for the
// type-specific shapes that own them (URL, content blob).
func (f *Form) buildItem(d scope.ItemDraft) scope.Item {
	item := scope.Item{
		ID:        f.itemID,
		ScopeID:   f.scopeID,
		Title:     d.Title,
		Notes:     d.Content,
		Priority:  d.Priority,
		Status:    d.Status,
		DueAt:     d.DueAt,
		Checklist: append([]scope.ChecklistEntry(nil), d.Checklist...),
		Tags:      append([]string(nil), d.Tags...),
		Metadata:  deriveMetadata(f.scopeType, d),
	}
	if item.Status == "" {
		item.Status = scope.StatusNotStarted
	}
	return item
}

// deriveMetadata builds the type-specific metadata envelope from the draft.
func deriveMetadata(t scope.Type, d scope.ItemDraft) scope.Metadata {
	switch t {
	case scope.TypeNote:
		return scope.NoteMeta{Content: d.Content}
	case scope.TypeBrainstorm:
		return scope.BrainstormMeta{Content: d.Content}
	case scope.TypeBookmark:
		return scope.BookmarkMeta{URL: d.URL}
	case scope.TypeResource:
		return scope.ResourceMeta{URL: d.URL}
	case scope.TypeTodo:
		return scope.TodoMeta{}
	default:
		return nil
	}
}
