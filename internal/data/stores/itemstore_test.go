package stores

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/data/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		now := time.Now()
		due := now.Add(24 * time.Hour)
		item := scope.Item{
			ID:       "item-1",
			ScopeID:  "scope-1",
			Title:    "Ship release notes",
			Notes:    "Draft is in the shared folder",
			Priority: scope.PriorityHigh,
			Status:   scope.StatusInProgress,
			DueAt:    &due,
			Tags:     []string{"release", "docs"},
		}

		require.NoError(t, store.Create(ctx, &item))

		got, err := store.Get(ctx, "item-1")
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
		assert.Equal(t, "scope-1", got.ScopeID)
		assert.Equal(t, "Ship release notes", got.Title)
		assert.Equal(t, "Draft is in the shared folder", got.Notes)
		assert.Equal(t, scope.PriorityHigh, got.Priority)
		assert.Equal(t, scope.StatusInProgress, got.Status)
		require.NotNil(t, got.DueAt)
		assert.Equal(t, due.UnixNano(), got.DueAt.UnixNano())
		assert.Equal(t, []string{"release", "docs"}, got.Tags)
	})

	t.Run("create generates ID and defaults status", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		item := scope.Item{ScopeID: "scope-1", Title: "Untracked task"}
		require.NoError(t, store.Create(ctx, &item))

		assert.NotEmpty(t, item.ID)
		assert.Equal(t, scope.StatusNotStarted, item.Status)
		assert.False(t, item.CreatedAt.IsZero())

		got, err := store.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, scope.StatusNotStarted, got.Status)
	})

	t.Run("get not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		_, err = store.Get(ctx, "nonexistent")
		assert.ErrorIs(t, err, scope.ErrNotFound)
	})

	t.Run("list returns empty slice", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		items, err := store.List(ctx, scope.ItemFilter{})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})

	t.Run("list filters by scope and status", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		base := time.Now()
		seed := []struct {
			scopeID string
			status  scope.Status
		}{
			{"scope-a", scope.StatusNotStarted},
			{"scope-a", scope.StatusDone},
			{"scope-b", scope.StatusNotStarted},
		}
		for i, s := range seed {
			require.NoError(t, store.Create(ctx, &scope.Item{
				ID:        fmt.Sprintf("item-%d", i),
				ScopeID:   s.scopeID,
				Title:     fmt.Sprintf("Task %d", i),
				Status:    s.status,
				CreatedAt: base.Add(time.Duration(i) * time.Second),
				UpdatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}

		inScope, err := store.List(ctx, scope.ItemFilter{ScopeID: "scope-a"})
		require.NoError(t, err)
		assert.Len(t, inScope, 2)

		done, err := store.List(ctx, scope.ItemFilter{Status: scope.StatusDone})
		require.NoError(t, err)
		require.Len(t, done, 1)
		assert.Equal(t, "item-1", done[0].ID)

		both, err := store.List(ctx, scope.ItemFilter{ScopeID: "scope-a", Status: scope.StatusNotStarted})
		require.NoError(t, err)
		require.Len(t, both, 1)
		assert.Equal(t, "item-0", both[0].ID)
	})

	t.Run("list orders newest first", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		base := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, store.Create(ctx, &scope.Item{
				ID:        fmt.Sprintf("item-%d", i),
				ScopeID:   "scope-a",
				Title:     fmt.Sprintf("Task %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
				UpdatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}

		items, err := store.List(ctx, scope.ItemFilter{})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "item-2", items[0].ID)
		assert.Equal(t, "item-0", items[2].ID)
	})

	t.Run("update", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		item := scope.Item{ID: "item-1", ScopeID: "scope-a", Title: "Before"}
		require.NoError(t, store.Create(ctx, &item))

		item.Title = "After"
		item.Status = scope.StatusDone
		require.NoError(t, store.Update(ctx, item))

		got, err := store.Get(ctx, "item-1")
		require.NoError(t, err)
		assert.Equal(t, "After", got.Title)
		assert.Equal(t, scope.StatusDone, got.Status)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("update not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		err = store.Update(ctx, scope.Item{ID: "nonexistent", Title: "x"})
		assert.ErrorIs(t, err, scope.ErrNotFound)
	})

	t.Run("soft delete hides from list but not get", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		item := scope.Item{ID: "item-1", ScopeID: "scope-a", Title: "Ephemeral"}
		require.NoError(t, store.Create(ctx, &item))
		require.NoError(t, store.SoftDelete(ctx, "item-1"))

		items, err := store.List(ctx, scope.ItemFilter{})
		require.NoError(t, err)
		assert.Empty(t, items)

		withDeleted, err := store.List(ctx, scope.ItemFilter{IncludeDeleted: true})
		require.NoError(t, err)
		assert.Len(t, withDeleted, 1)

		got, err := store.Get(ctx, "item-1")
		require.NoError(t, err)
		assert.True(t, got.Deleted())
	})

	t.Run("soft delete twice returns not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		item := scope.Item{ID: "item-1", ScopeID: "scope-a", Title: "Once"}
		require.NoError(t, store.Create(ctx, &item))
		require.NoError(t, store.SoftDelete(ctx, "item-1"))
		assert.ErrorIs(t, store.SoftDelete(ctx, "item-1"), scope.ErrNotFound)
	})

	t.Run("checklist round trip", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		done := time.Now().Truncate(time.Second)
		item := scope.Item{
			ID:      "item-1",
			ScopeID: "scope-a",
			Title:   "Groceries",
			Checklist: []scope.ChecklistEntry{
				{ID: "c1", Text: "Milk", Completed: true, CompletedAt: &done},
				{ID: "c2", Text: "Bread"},
			},
		}

		require.NoError(t, store.Create(ctx, &item))

		got, err := store.Get(ctx, "item-1")
		require.NoError(t, err)
		require.Len(t, got.Checklist, 2)
		assert.Equal(t, "Milk", got.Checklist[0].Text)
		assert.True(t, got.Checklist[0].Completed)
		require.NotNil(t, got.Checklist[0].CompletedAt)
		assert.Equal(t, "c2", got.Checklist[1].ID)
		assert.False(t, got.Checklist[1].Completed)
	})

	t.Run("metadata round trip", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		item := scope.Item{
			ID:       "item-1",
			ScopeID:  "scope-a",
			Title:    "Go docs",
			Metadata: scope.BookmarkMeta{URL: "https://go.dev/doc"},
		}

		require.NoError(t, store.Create(ctx, &item))

		got, err := store.Get(ctx, "item-1")
		require.NoError(t, err)
		meta, ok := got.Metadata.(scope.BookmarkMeta)
		require.True(t, ok, "got %T, want BookmarkMeta", got.Metadata)
		assert.Equal(t, "https://go.dev/doc", meta.URL)
	})

	t.Run("nil metadata stays nil", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewItemStore(database)

		item := scope.Item{ID: "item-1", ScopeID: "scope-a", Title: "Bare"}
		require.NoError(t, store.Create(ctx, &item))

		got, err := store.Get(ctx, "item-1")
		require.NoError(t, err)
		assert.Nil(t, got.Metadata)
		assert.Nil(t, got.Checklist)
		assert.Nil(t, got.Tags)
	})
}
