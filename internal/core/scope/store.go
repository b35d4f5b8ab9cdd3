package scope

import "context"

// ItemFilter controls which items are returned by ItemStore.List.
// Soft-deleted items are excluded unless IncludeDeleted is set.
type ItemFilter struct {
	ScopeID        string // empty means all scopes
	Status         Status // empty means all statuses
	Tag            string // exact tag or doublestar glob, matched by the service layer
	IncludeDeleted bool
}

// ScopeFilter controls which scopes are returned by ScopeStore.List.
type ScopeFilter struct {
	Type            Type // empty means all types
	IncludeArchived bool
	IncludeDeleted  bool
}

// ItemStore defines persistence for scope items.
type ItemStore interface {
	// Create persists a new item. The store populates ID, Status,
	// CreatedAt, and UpdatedAt if not already set.
	Create(ctx context.Context, item *Item) error

	// Get returns a single item by ID, including soft-deleted ones.
	// Returns ErrNotFound if the item does not exist.
	Get(ctx context.Context, id string) (Item, error)

	// List returns items matching the filter, ordered by created_at DESC.
	List(ctx context.Context, filter ItemFilter) ([]Item, error)

	// Update replaces the stored record for item.ID and bumps UpdatedAt.
	// Returns ErrNotFound if the item does not exist.
	Update(ctx context.Context, item Item) error

	// SoftDelete marks the item's deletion timestamp. The record is kept.
	// Returns ErrNotFound if the item does not exist.
	SoftDelete(ctx context.Context, id string) error
}

// ScopeStore defines persistence for scopes.
type ScopeStore interface {
	// Create persists a new scope. The store populates ID, CreatedAt, and
	// UpdatedAt if not already set. Returns ErrDuplicateName if an active
	// scope with the same name exists.
	Create(ctx context.Context, sc *Scope) error

	// Get returns a single scope by ID, including soft-deleted ones.
	// Returns ErrScopeNotFound if the scope does not exist.
	Get(ctx context.Context, id string) (Scope, error)

	// List returns scopes matching the filter, ordered by sort_order then name.
	List(ctx context.Context, filter ScopeFilter) ([]Scope, error)

	// Update replaces the stored record for sc.ID and bumps UpdatedAt.
	// Returns ErrScopeNotFound if the scope does not exist.
	Update(ctx context.Context, sc Scope) error

	// Archive marks the scope's archive timestamp.
	Archive(ctx context.Context, id string) error

	// SoftDelete marks the scope's deletion timestamp. The record is kept.
	SoftDelete(ctx context.Context, id string) error
}
