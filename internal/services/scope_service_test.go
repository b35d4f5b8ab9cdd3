package services

import (
	"context"
	"testing"

	"github.com/colonyops/scopepad/internal/core/eventbus"
	"github.com/colonyops/scopepad/internal/core/eventbus/testbus"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/data/db"
	"github.com/colonyops/scopepad/internal/data/stores"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScopeService(t *testing.T) (*ScopeService, *testbus.Bus) {
	t.Helper()

	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	bus := testbus.New(t)
	svc := NewScopeService(stores.NewScopeStore(database), bus.EventBus, zerolog.Nop())
	return svc, bus
}

func TestScopeServiceSeed(t *testing.T) {
	ctx := context.Background()
	svc, bus := newScopeService(t)

	require.NoError(t, svc.Seed(ctx))
	bus.WaitFor(t, eventbus.EventNotificationPublished, 1)

	scopes, err := svc.ListScopes(ctx, scope.ScopeFilter{}).Unwrap()
	require.NoError(t, err)
	require.Len(t, scopes, len(scope.BuiltInTypes()))

	byType := map[scope.Type]scope.Scope{}
	for _, sc := range scopes {
		assert.True(t, sc.IsSystem, "seeded scope %q should be a system scope", sc.Name)
		byType[sc.Type] = sc
	}
	assert.Equal(t, "Todos", byType[scope.TypeTodo].Name)
	assert.Equal(t, "Bookmarks", byType[scope.TypeBookmark].Name)

	// Second run is a no-op.
	require.NoError(t, svc.Seed(ctx))
	scopes, err = svc.ListScopes(ctx, scope.ScopeFilter{}).Unwrap()
	require.NoError(t, err)
	assert.Len(t, scopes, len(scope.BuiltInTypes()))
}

func TestScopeServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and publishes", func(t *testing.T) {
		svc, bus := newScopeService(t)

		sc, err := svc.CreateScope(ctx, scope.Scope{Name: "  Side Projects  ", Type: scope.TypeNote}).Unwrap()
		require.NoError(t, err)
		assert.Equal(t, "Side Projects", sc.Name)
		assert.NotEmpty(t, sc.ID)
		assert.False(t, sc.IsSystem)

		bus.WaitFor(t, eventbus.EventScopeCreated, 1)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		svc, bus := newScopeService(t)

		res := svc.CreateScope(ctx, scope.Scope{Name: "   "})
		assert.True(t, res.Failed())
		assert.Equal(t, "name is required", res.Error)
		bus.AssertNone(t, eventbus.EventScopeCreated)
	})

	t.Run("rejects bad color", func(t *testing.T) {
		svc, _ := newScopeService(t)

		res := svc.CreateScope(ctx, scope.Scope{Name: "Work", Color: "purple"})
		assert.True(t, res.Failed())
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		svc, _ := newScopeService(t)

		_, err := svc.CreateScope(ctx, scope.Scope{Name: "Work"}).Unwrap()
		require.NoError(t, err)

		res := svc.CreateScope(ctx, scope.Scope{Name: "Work"})
		assert.True(t, res.Failed())
		assert.Equal(t, scope.ErrDuplicateName.Error(), res.Error)
	})

	t.Run("never creates system scopes", func(t *testing.T) {
		svc, _ := newScopeService(t)

		sc, err := svc.CreateScope(ctx, scope.Scope{Name: "Sneaky", IsSystem: true}).Unwrap()
		require.NoError(t, err)
		assert.False(t, sc.IsSystem)
	})
}

func TestScopeServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("updates fields", func(t *testing.T) {
		svc, bus := newScopeService(t)

		sc, err := svc.CreateScope(ctx, scope.Scope{Name: "Before", Type: scope.TypeTodo}).Unwrap()
		require.NoError(t, err)

		sc.Name = "After"
		sc.Pinned = true
		got, err := svc.UpdateScope(ctx, sc.ID, sc).Unwrap()
		require.NoError(t, err)
		assert.Equal(t, "After", got.Name)
		assert.True(t, got.Pinned)

		bus.WaitFor(t, eventbus.EventScopeUpdated, 1)
	})

	t.Run("system scope type is immutable", func(t *testing.T) {
		svc, _ := newScopeService(t)
		require.NoError(t, svc.Seed(ctx))

		scopes, err := svc.ListScopes(ctx, scope.ScopeFilter{Type: scope.TypeTodo}).Unwrap()
		require.NoError(t, err)
		require.Len(t, scopes, 1)

		sys := scopes[0]
		sys.Type = scope.TypeNote
		res := svc.UpdateScope(ctx, sys.ID, sys)
		assert.True(t, res.Failed())
		assert.Equal(t, scope.ErrSystemScopeType.Error(), res.Error)
	})

	t.Run("user scope type also pinned to existing", func(t *testing.T) {
		svc, _ := newScopeService(t)

		sc, err := svc.CreateScope(ctx, scope.Scope{Name: "Links", Type: scope.TypeBookmark}).Unwrap()
		require.NoError(t, err)

		sc.Type = scope.TypeNote
		got, err := svc.UpdateScope(ctx, sc.ID, sc).Unwrap()
		require.NoError(t, err)
		assert.Equal(t, scope.TypeBookmark, got.Type)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newScopeService(t)

		res := svc.UpdateScope(ctx, "nonexistent", scope.Scope{Name: "x"})
		assert.True(t, res.Failed())
	})
}

func TestScopeServiceFind(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScopeService(t)

	created, err := svc.CreateScope(ctx, scope.Scope{Name: "Reading List", Type: scope.TypeBookmark}).Unwrap()
	require.NoError(t, err)

	byID, err := svc.FindScope(ctx, created.ID).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	byName, err := svc.FindScope(ctx, "reading list").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	res := svc.FindScope(ctx, "no such scope")
	assert.True(t, res.Failed())
	assert.Equal(t, scope.ErrScopeNotFound.Error(), res.Error)
}

func TestScopeServiceArchiveAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("archive", func(t *testing.T) {
		svc, bus := newScopeService(t)

		sc, err := svc.CreateScope(ctx, scope.Scope{Name: "Old"}).Unwrap()
		require.NoError(t, err)

		got, err := svc.ArchiveScope(ctx, sc.ID).Unwrap()
		require.NoError(t, err)
		assert.True(t, got.Archived())

		bus.WaitFor(t, eventbus.EventScopeArchived, 1)
	})

	t.Run("delete user scope", func(t *testing.T) {
		svc, bus := newScopeService(t)

		sc, err := svc.CreateScope(ctx, scope.Scope{Name: "Throwaway"}).Unwrap()
		require.NoError(t, err)

		_, err = svc.DeleteScope(ctx, sc.ID).Unwrap()
		require.NoError(t, err)

		events := bus.WaitFor(t, eventbus.EventScopeDeleted, 1)
		payload := events[0].Payload.(eventbus.ScopeDeletedPayload)
		assert.Equal(t, sc.ID, payload.ScopeID)

		scopes, err := svc.ListScopes(ctx, scope.ScopeFilter{}).Unwrap()
		require.NoError(t, err)
		assert.Empty(t, scopes)
	})

	t.Run("system scope cannot be deleted", func(t *testing.T) {
		svc, bus := newScopeService(t)
		require.NoError(t, svc.Seed(ctx))

		scopes, err := svc.ListScopes(ctx, scope.ScopeFilter{Type: scope.TypeNote}).Unwrap()
		require.NoError(t, err)
		require.Len(t, scopes, 1)

		res := svc.DeleteScope(ctx, scopes[0].ID)
		assert.True(t, res.Failed())
		bus.AssertNone(t, eventbus.EventScopeDeleted)
	})
}
