package stores

import (
	"context"
	"testing"

	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/data/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		sc := scope.Scope{
			ID:          "scope-1",
			Name:        "Reading List",
			Description: "Articles and papers",
			Icon:        "book",
			Color:       "#7c3aed",
			Type:        scope.TypeBookmark,
			Pinned:      true,
			SortOrder:   3,
		}

		require.NoError(t, store.Create(ctx, &sc))

		got, err := store.Get(ctx, "scope-1")
		require.NoError(t, err)
		assert.Equal(t, "Reading List", got.Name)
		assert.Equal(t, "Articles and papers", got.Description)
		assert.Equal(t, "book", got.Icon)
		assert.Equal(t, "#7c3aed", got.Color)
		assert.Equal(t, scope.TypeBookmark, got.Type)
		assert.True(t, got.Pinned)
		assert.Equal(t, 3, got.SortOrder)
		assert.False(t, got.IsSystem)
	})

	t.Run("create generates ID", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		sc := scope.Scope{Name: "Inbox", Type: scope.TypeTodo}
		require.NoError(t, store.Create(ctx, &sc))
		assert.Len(t, sc.ID, scopeIDLength)
		assert.False(t, sc.CreatedAt.IsZero())
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		require.NoError(t, store.Create(ctx, &scope.Scope{Name: "Work", Type: scope.TypeTodo}))

		err = store.Create(ctx, &scope.Scope{Name: "Work", Type: scope.TypeNote})
		assert.ErrorIs(t, err, scope.ErrDuplicateName)
	})

	t.Run("deleted scope frees its name", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		first := scope.Scope{Name: "Work", Type: scope.TypeTodo}
		require.NoError(t, store.Create(ctx, &first))
		require.NoError(t, store.SoftDelete(ctx, first.ID))

		second := scope.Scope{Name: "Work", Type: scope.TypeTodo}
		require.NoError(t, store.Create(ctx, &second))
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("get not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		_, err = store.Get(ctx, "nonexistent")
		assert.ErrorIs(t, err, scope.ErrScopeNotFound)
	})

	t.Run("list orders by sort order then name", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		seed := []scope.Scope{
			{Name: "Zeta", Type: scope.TypeTodo, SortOrder: 0},
			{Name: "Alpha", Type: scope.TypeNote, SortOrder: 0},
			{Name: "First", Type: scope.TypeTodo, SortOrder: -1},
		}
		for i := range seed {
			require.NoError(t, store.Create(ctx, &seed[i]))
		}

		scopes, err := store.List(ctx, scope.ScopeFilter{})
		require.NoError(t, err)
		require.Len(t, scopes, 3)
		assert.Equal(t, "First", scopes[0].Name)
		assert.Equal(t, "Alpha", scopes[1].Name)
		assert.Equal(t, "Zeta", scopes[2].Name)
	})

	t.Run("list filters by type", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		require.NoError(t, store.Create(ctx, &scope.Scope{Name: "Todos", Type: scope.TypeTodo}))
		require.NoError(t, store.Create(ctx, &scope.Scope{Name: "Notes", Type: scope.TypeNote}))

		scopes, err := store.List(ctx, scope.ScopeFilter{Type: scope.TypeNote})
		require.NoError(t, err)
		require.Len(t, scopes, 1)
		assert.Equal(t, "Notes", scopes[0].Name)
	})

	t.Run("archive hides from default list", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		sc := scope.Scope{Name: "Old Project", Type: scope.TypeTodo}
		require.NoError(t, store.Create(ctx, &sc))
		require.NoError(t, store.Archive(ctx, sc.ID))

		scopes, err := store.List(ctx, scope.ScopeFilter{})
		require.NoError(t, err)
		assert.Empty(t, scopes)

		scopes, err = store.List(ctx, scope.ScopeFilter{IncludeArchived: true})
		require.NoError(t, err)
		require.Len(t, scopes, 1)
		assert.True(t, scopes[0].Archived())
	})

	t.Run("update", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		sc := scope.Scope{Name: "Before", Type: scope.TypeTodo}
		require.NoError(t, store.Create(ctx, &sc))

		sc.Name = "After"
		sc.Pinned = true
		require.NoError(t, store.Update(ctx, sc))

		got, err := store.Get(ctx, sc.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", got.Name)
		assert.True(t, got.Pinned)
	})

	t.Run("update not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		err = store.Update(ctx, scope.Scope{ID: "nonexistent", Name: "x", Type: scope.TypeTodo})
		assert.ErrorIs(t, err, scope.ErrScopeNotFound)
	})

	t.Run("soft delete", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewScopeStore(database)

		sc := scope.Scope{Name: "Throwaway", Type: scope.TypeTodo}
		require.NoError(t, store.Create(ctx, &sc))
		require.NoError(t, store.SoftDelete(ctx, sc.ID))

		scopes, err := store.List(ctx, scope.ScopeFilter{})
		require.NoError(t, err)
		assert.Empty(t, scopes)

		got, err := store.Get(ctx, sc.ID)
		require.NoError(t, err)
		assert.True(t, got.Deleted())
	})
}
