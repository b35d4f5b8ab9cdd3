package scope

import "time"

// Priority is the urgency level of an item. Empty means unset.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
	PriorityUrgent   Priority = "urgent"
)

// Priorities returns all priority levels in ascending order of urgency.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical, PriorityUrgent}
}

// Valid reports whether p is empty or one of the defined levels.
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical, PriorityUrgent:
		return true
	}
	return false
}

// Status represents the lifecycle state of an item.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// Statuses returns all item statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusBlocked, StatusReview, StatusDone}
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusBlocked, StatusReview, StatusDone:
		return true
	}
	return false
}

// ChecklistEntry is a single sub-entry of an item's checklist. IDs are
// unique within an item; slice order is display order.
type ChecklistEntry struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Item is a single work record belonging to exactly one scope.
type Item struct {
	ID        string           `json:"id"`
	ScopeID   string           `json:"scope_id"`
	Title     string           `json:"title"`
	Notes     string           `json:"notes,omitempty"`
	Priority  Priority         `json:"priority,omitempty"`
	Status    Status           `json:"status"`
	DueAt     *time.Time       `json:"due_at,omitempty"`
	Checklist []ChecklistEntry `json:"checklist,omitempty"`
	Tags      []string         `json:"tags,omitempty"`
	Metadata  Metadata         `json:"metadata,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt *time.Time       `json:"deleted_at,omitempty"`
}

// Deleted reports whether the item has been soft-deleted.
func (it Item) Deleted() bool { return it.DeletedAt != nil }
