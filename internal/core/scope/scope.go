// Package scope defines the typed scope/scope-item domain model: scopes are
// named containers whose type governs which item fields are required, which
// inputs are shown, and how item metadata is shaped.
package scope

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a scope item does not exist.
	ErrNotFound = errors.New("scope item not found")
	// ErrScopeNotFound is returned when a scope does not exist.
	ErrScopeNotFound = errors.New("scope not found")
	// ErrSystemScopeType is returned when an update attempts to change the
	// type of a system scope.
	ErrSystemScopeType = errors.New("system scope type is immutable")
	// ErrDuplicateName is returned when an active scope with the same name
	// already exists.
	ErrDuplicateName = errors.New("scope name already in use")
)

// Type classifies a scope. The set of built-in types is closed; custom
// scopes carry a free-form type string and fall back to a default field set.
type Type string

const (
	TypeTodo       Type = "todo"
	TypeNote       Type = "note"
	TypeBrainstorm Type = "brainstorm"
	TypeChecklist  Type = "checklist"
	TypeMilestone  Type = "milestone"
	TypeResource   Type = "resource"
	TypeBookmark   Type = "bookmark"
	TypeEvent      Type = "event"
	TypeTimeblock  Type = "timeblock"
	TypeFlow       Type = "flow"
)

// BuiltInTypes returns the ten built-in scope types in display order.
func BuiltInTypes() []Type {
	return []Type{
		TypeTodo,
		TypeNote,
		TypeBrainstorm,
		TypeChecklist,
		TypeMilestone,
		TypeResource,
		TypeBookmark,
		TypeEvent,
		TypeTimeblock,
		TypeFlow,
	}
}

// IsBuiltIn reports whether t is one of the ten built-in scope types.
func (t Type) IsBuiltIn() bool {
	switch t {
	case TypeTodo, TypeNote, TypeBrainstorm, TypeChecklist, TypeMilestone,
		TypeResource, TypeBookmark, TypeEvent, TypeTimeblock, TypeFlow:
		return true
	}
	return false
}

// Scope is a named container of work items, typed by a scope Type.
type Scope struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Color       string     `json:"color,omitempty"`
	Type        Type       `json:"type"`
	IsSystem    bool       `json:"is_system"`
	Pinned      bool       `json:"pinned"`
	SortOrder   int        `json:"sort_order"`
	Metadata    Metadata   `json:"metadata,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Deleted reports whether the scope has been soft-deleted. Deleted scopes
// are excluded from all default listings.
func (s Scope) Deleted() bool { return s.DeletedAt != nil }

// Archived reports whether the scope has been archived.
func (s Scope) Archived() bool { return s.ArchivedAt != nil }
