package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/colonyops/scopepad/internal/core/eventbus"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/pkg/result"
	"github.com/rs/zerolog"
)

// ItemService wraps the item store with scope validation, tag filtering, and
// event publishing. Every operation returns a result envelope; raw errors and
// panics never cross this boundary.
type ItemService struct {
	items  scope.ItemStore
	scopes scope.ScopeStore
	bus    *eventbus.EventBus
	log    zerolog.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(items scope.ItemStore, scopes scope.ScopeStore, bus *eventbus.EventBus, log zerolog.Logger) *ItemService {
	return &ItemService{
		items:  items,
		scopes: scopes,
		bus:    bus,
		log:    log.With().Str("component", "item-service").Logger(),
	}
}

// CreateItem persists a new item after checking that its scope exists and is
// neither archived nor deleted.
func (s *ItemService) CreateItem(ctx context.Context, item scope.Item) (res result.Result[scope.Item]) {
	defer result.Recover(&res)

	sc, err := s.scopes.Get(ctx, item.ScopeID)
	if err != nil {
		return result.Err[scope.Item](fmt.Errorf("resolve scope: %w", err))
	}
	if sc.Deleted() || sc.Archived() {
		return result.Errf[scope.Item]("scope %q is no longer active", sc.Name)
	}

	if err := s.items.Create(ctx, &item); err != nil {
		return result.Err[scope.Item](fmt.Errorf("create item: %w", err))
	}

	s.log.Debug().Str("id", item.ID).Str("scope", item.ScopeID).Msg("item created")

	return result.Ok(item)
}

// UpdateItem replaces the stored record for id. The item's identity cannot
// change; id wins over item.ID.
func (s *ItemService) UpdateItem(ctx context.Context, id string, item scope.Item) (res result.Result[scope.Item]) {
	defer result.Recover(&res)

	existing, err := s.items.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Item](fmt.Errorf("resolve item: %w", err))
	}
	if existing.Deleted() {
		return result.Errf[scope.Item]("item %q has been deleted", id)
	}

	item.ID = id
	if item.ScopeID == "" {
		item.ScopeID = existing.ScopeID
	}
	item.CreatedAt = existing.CreatedAt

	if err := s.items.Update(ctx, item); err != nil {
		return result.Err[scope.Item](fmt.Errorf("update item: %w", err))
	}

	updated, err := s.items.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Item](fmt.Errorf("reload item: %w", err))
	}

	return result.Ok(updated)
}

// GetItem returns a single item by ID.
func (s *ItemService) GetItem(ctx context.Context, id string) (res result.Result[scope.Item]) {
	defer result.Recover(&res)

	item, err := s.items.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Item](err)
	}

	return result.Ok(item)
}

// ListItems returns items matching the filter. Tag filtering accepts an
// exact tag or a doublestar glob such as "work/**"; an item matches when any
// of its tags matches the pattern.
func (s *ItemService) ListItems(ctx context.Context, filter scope.ItemFilter) (res result.Result[[]scope.Item]) {
	defer result.Recover(&res)

	items, err := s.items.List(ctx, filter)
	if err != nil {
		return result.Err[[]scope.Item](err)
	}

	if filter.Tag != "" {
		if !doublestar.ValidatePattern(filter.Tag) {
			return result.Errf[[]scope.Item]("invalid tag pattern %q", filter.Tag)
		}
		items = slices.DeleteFunc(items, func(it scope.Item) bool {
			return !matchesTag(filter.Tag, it.Tags)
		})
	}

	return result.Ok(items)
}

// CompleteItem marks an item's status as done.
func (s *ItemService) CompleteItem(ctx context.Context, id string) (res result.Result[scope.Item]) {
	defer result.Recover(&res)

	item, err := s.items.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Item](err)
	}
	if item.Deleted() {
		return result.Errf[scope.Item]("item %q has been deleted", id)
	}

	item.Status = scope.StatusDone
	if err := s.items.Update(ctx, item); err != nil {
		return result.Err[scope.Item](fmt.Errorf("complete item: %w", err))
	}

	s.bus.PublishItemUpdated(eventbus.ItemUpdatedPayload{Item: &item})

	return result.Ok(item)
}

// DeleteItem soft-deletes an item and publishes item.deleted. The record is
// kept; default listings exclude it.
func (s *ItemService) DeleteItem(ctx context.Context, id string) (res result.Result[scope.Item]) {
	defer result.Recover(&res)

	item, err := s.items.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Item](err)
	}

	if err := s.items.SoftDelete(ctx, id); err != nil {
		return result.Err[scope.Item](fmt.Errorf("delete item: %w", err))
	}

	s.bus.PublishItemDeleted(eventbus.ItemDeletedPayload{ItemID: id, ScopeID: item.ScopeID})
	s.log.Debug().Str("id", id).Msg("item deleted")

	return result.Ok(item)
}

// matchesTag reports whether any tag matches the doublestar pattern. Plain
// strings with no glob characters behave as exact matches.
func matchesTag(pattern string, tags []string) bool {
	for _, tag := range tags {
		if ok, err := doublestar.Match(pattern, tag); err == nil && ok {
			return true
		}
	}
	return false
}
