package itemform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/scopepad/internal/core/eventbus"
	"github.com/colonyops/scopepad/internal/core/eventbus/testbus"
	"github.com/colonyops/scopepad/internal/core/form"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/pkg/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService records create/update calls and can be scripted to fail.
type fakeService struct {
	mu        sync.Mutex
	createErr error
	updateErr error
	created   []scope.Item
	updated   []scope.Item
}

func (s *fakeService) CreateItem(_ context.Context, item scope.Item) result.Result[scope.Item] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return result.Err[scope.Item](s.createErr)
	}
	item.ID = fmt.Sprintf("it-%d", len(s.created)+1)
	s.created = append(s.created, item)
	return result.Ok(item)
}

func (s *fakeService) UpdateItem(_ context.Context, id string, item scope.Item) result.Result[scope.Item] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return result.Err[scope.Item](s.updateErr)
	}
	item.ID = id
	s.updated = append(s.updated, item)
	return result.Ok(item)
}

func bookmarkScope() scope.Scope {
	return scope.Scope{ID: "sc-bm", Name: "Bookmarks", Type: scope.TypeBookmark, IsSystem: true}
}

func todoScope() scope.Scope {
	return scope.Scope{ID: "sc-todo", Name: "Todos", Type: scope.TypeTodo, IsSystem: true}
}

func checklistScope() scope.Scope {
	return scope.Scope{ID: "sc-cl", Name: "Checklists", Type: scope.TypeChecklist, IsSystem: true}
}

func TestForm_CreateMode_SubmitPersistsAndEmits(t *testing.T) {
	bus := testbus.New(t)
	svc := &fakeService{}
	f := New(svc, bus.EventBus, todoScope(), nil)

	f.SetTitle("Water plants")
	f.SetPriority(scope.PriorityLow)

	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, svc.created, 1)
	assert.Equal(t, "Water plants", svc.created[0].Title)
	assert.Equal(t, "sc-todo", svc.created[0].ScopeID)
	assert.Equal(t, scope.StatusNotStarted, svc.created[0].Status, "status defaults when unset")

	events := bus.WaitFor(t, eventbus.EventItemCreated, 1)
	payload := events[0].Payload.(eventbus.ItemCreatedPayload)
	assert.Equal(t, "it-1", payload.Item.ID)

	assert.Equal(t, scope.ItemDraft{}, f.Draft(), "create mode resets the draft on success")
}

func TestForm_TwoSequentialCreates(t *testing.T) {
	bus := testbus.New(t)
	svc := &fakeService{}
	f := New(svc, bus.EventBus, todoScope(), nil)

	f.SetTitle("first")
	require.NoError(t, f.Submit(context.Background()))

	f.SetTitle("second")
	require.NoError(t, f.Submit(context.Background()))

	events := bus.WaitFor(t, eventbus.EventItemCreated, 2)
	first := events[0].Payload.(eventbus.ItemCreatedPayload)
	second := events[1].Payload.(eventbus.ItemCreatedPayload)
	assert.NotEqual(t, first.Item.ID, second.Item.ID, "each submission produces a distinct record")

	assert.Equal(t, scope.ItemDraft{}, f.Draft(), "draft is empty after the second submission")
}

func TestForm_ValidationFailureNeverReachesService(t *testing.T) {
	bus := testbus.New(t)
	svc := &fakeService{}
	f := New(svc, bus.EventBus, bookmarkScope(), nil)

	f.SetTitle("Docs")
	f.SetURL("not-a-url")

	err := f.Submit(context.Background())

	require.ErrorIs(t, err, form.ErrValidation)
	assert.Equal(t, scope.MsgURLInvalid, f.FieldError(scope.FieldURL))
	assert.Empty(t, svc.created)
	bus.AssertNone(t, eventbus.EventItemCreated)
}

func TestForm_SubmitFailure(t *testing.T) {
	bus := testbus.New(t)
	svc := &fakeService{createErr: errors.New("network down")}
	f := New(svc, bus.EventBus, todoScope(), nil)

	f.SetTitle("Water plants")
	err := f.Submit(context.Background())

	require.EqualError(t, err, "network down", "failure is re-raised to the caller")
	assert.False(t, f.Submitting(), "engine settles back to idle")
	assert.Equal(t, "network down", f.GeneralError())
	assert.Equal(t, "Water plants", f.Draft().Title, "draft survives a failed submission")
	bus.AssertNone(t, eventbus.EventItemCreated)
}

func TestForm_EditMode_SeedsAndUpdates(t *testing.T) {
	bus := testbus.New(t)
	svc := &fakeService{}

	due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	existing := scope.Item{
		ID:       "it-9",
		ScopeID:  "sc-bm",
		Title:    "Go docs",
		Priority: scope.PriorityMedium,
		Status:   scope.StatusInProgress,
		DueAt:    &due,
		Tags:     []string{"ref"},
		Metadata: scope.BookmarkMeta{URL: "https://go.dev"},
	}

	f := New(svc, bus.EventBus, bookmarkScope(), &existing)

	require.Equal(t, ModeEdit, f.Mode())
	d := f.Draft()
	assert.Equal(t, "Go docs", d.Title)
	assert.Equal(t, "https://go.dev", d.URL)
	assert.Equal(t, scope.PriorityMedium, d.Priority)

	f.SetTitle("Go documentation")
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, svc.updated, 1)
	assert.Equal(t, "it-9", svc.updated[0].ID)
	assert.Equal(t, "Go documentation", svc.updated[0].Title)
	assert.Equal(t, scope.BookmarkMeta{URL: "https://go.dev"}, svc.updated[0].Metadata)

	bus.WaitFor(t, eventbus.EventItemUpdated, 1)
	bus.AssertNone(t, eventbus.EventItemCreated)

	assert.Equal(t, "Go documentation", f.Draft().Title, "edit mode keeps the draft intact")
}

func TestForm_EditMode_LegacyContentSeeding(t *testing.T) {
	svc := &fakeService{}
	noteScope := scope.Scope{ID: "sc-n", Name: "Notes", Type: scope.TypeNote}
	existing := scope.Item{
		ID:       "it-2",
		ScopeID:  "sc-n",
		Title:    "Meeting",
		Metadata: scope.NoteMeta{Content: "legacy body"},
	}

	f := New(svc, nil, noteScope, &existing)

	assert.Equal(t, "legacy body", f.Draft().Content, "metadata content used when notes field empty")
}

func TestForm_MetadataDerivedOnSubmit(t *testing.T) {
	svc := &fakeService{}
	noteScope := scope.Scope{ID: "sc-n", Name: "Notes", Type: scope.TypeNote}
	f := New(svc, nil, noteScope, nil)

	f.SetTitle("Meeting")
	f.SetContent("# agenda")

	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, svc.created, 1)
	assert.Equal(t, "# agenda", svc.created[0].Notes, "content stored canonically in notes")
	assert.Equal(t, scope.NoteMeta{Content: "# agenda"}, svc.created[0].Metadata)
}

func TestForm_EditingFieldClearsItsError(t *testing.T) {
	svc := &fakeService{}
	f := New(svc, nil, bookmarkScope(), nil)

	require.ErrorIs(t, f.Submit(context.Background()), form.ErrValidation)
	require.Equal(t, scope.MsgTitleRequired, f.FieldError(scope.FieldTitle))
	require.Equal(t, scope.MsgURLRequired, f.FieldError(scope.FieldURL))

	f.SetTitle("Docs")

	assert.Empty(t, f.FieldError(scope.FieldTitle), "edited field error clears")
	assert.Equal(t, scope.MsgURLRequired, f.FieldError(scope.FieldURL), "other field errors remain")
}

func TestForm_ChecklistSatisfiesValidation(t *testing.T) {
	svc := &fakeService{}
	f := New(svc, nil, checklistScope(), nil)

	f.SetTitle("Trip")
	require.ErrorIs(t, f.Submit(context.Background()), form.ErrValidation)
	require.Equal(t, scope.MsgItemsRequired, f.FieldError(scope.FieldItems))

	f.AppendChecklistEntry("Pack bags")

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, svc.created, 1)
	require.Len(t, svc.created[0].Checklist, 1)
	assert.Equal(t, "Pack bags", svc.created[0].Checklist[0].Text)
}

func TestForm_Cancel(t *testing.T) {
	bus := testbus.New(t)
	svc := &fakeService{}
	existing := scope.Item{ID: "it-7", ScopeID: "sc-todo", Title: "x"}
	f := New(svc, bus.EventBus, todoScope(), &existing)

	f.Cancel()

	events := bus.WaitFor(t, eventbus.EventFormCancelled, 1)
	payload := events[0].Payload.(eventbus.FormCancelledPayload)
	assert.Equal(t, "sc-todo", payload.ScopeID)
	assert.Equal(t, "it-7", payload.ItemID)
}

func TestForm_CanSubmit(t *testing.T) {
	svc := &fakeService{}
	f := New(svc, nil, todoScope(), nil)

	assert.False(t, f.CanSubmit())
	f.SetTitle("Water plants")
	assert.True(t, f.CanSubmit())
	assert.Empty(t, f.Errors(), "CanSubmit leaves the error map untouched")
}
