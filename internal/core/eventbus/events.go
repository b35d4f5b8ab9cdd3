package eventbus

import "github.com/colonyops/scopepad/internal/core/scope"

// ItemCreatedPayload is emitted when a new item is persisted.
type ItemCreatedPayload struct {
	Item *scope.Item
}

// ItemUpdatedPayload is emitted when an existing item is updated.
type ItemUpdatedPayload struct {
	Item *scope.Item
}

// ItemDeletedPayload is emitted when an item is soft-deleted.
type ItemDeletedPayload struct {
	ItemID  string
	ScopeID string
}

// ScopeCreatedPayload is emitted when a new scope is created.
type ScopeCreatedPayload struct {
	Scope *scope.Scope
}

// ScopeUpdatedPayload is emitted when a scope is updated.
type ScopeUpdatedPayload struct {
	Scope *scope.Scope
}

// ScopeArchivedPayload is emitted when a scope is archived.
type ScopeArchivedPayload struct {
	ScopeID string
}

// ScopeDeletedPayload is emitted when a scope is soft-deleted.
type ScopeDeletedPayload struct {
	ScopeID string
}

// FormCancelledPayload is emitted when an entry form is abandoned.
type FormCancelledPayload struct {
	ScopeID string
	ItemID  string // empty in create mode
}

// NotificationLevel classifies a user-facing notification.
type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelWarning NotificationLevel = "warning"
	LevelError   NotificationLevel = "error"
)

// NotificationPublishedPayload carries a user-facing notification.
type NotificationPublishedPayload struct {
	Level   NotificationLevel
	Message string
}

// PublishItemCreated emits an item.created event.
func (bus *EventBus) PublishItemCreated(p ItemCreatedPayload) { bus.send(EventItemCreated, p) }

// PublishItemUpdated emits an item.updated event.
func (bus *EventBus) PublishItemUpdated(p ItemUpdatedPayload) { bus.send(EventItemUpdated, p) }

// PublishItemDeleted emits an item.deleted event.
func (bus *EventBus) PublishItemDeleted(p ItemDeletedPayload) { bus.send(EventItemDeleted, p) }

// PublishScopeCreated emits a scope.created event.
func (bus *EventBus) PublishScopeCreated(p ScopeCreatedPayload) { bus.send(EventScopeCreated, p) }

// PublishScopeUpdated emits a scope.updated event.
func (bus *EventBus) PublishScopeUpdated(p ScopeUpdatedPayload) { bus.send(EventScopeUpdated, p) }

// PublishScopeArchived emits a scope.archived event.
func (bus *EventBus) PublishScopeArchived(p ScopeArchivedPayload) { bus.send(EventScopeArchived, p) }

// PublishScopeDeleted emits a scope.deleted event.
func (bus *EventBus) PublishScopeDeleted(p ScopeDeletedPayload) { bus.send(EventScopeDeleted, p) }

// PublishFormCancelled emits a form.cancelled event.
func (bus *EventBus) PublishFormCancelled(p FormCancelledPayload) { bus.send(EventFormCancelled, p) }

// PublishNotificationPublished emits a notification.published event.
func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) {
	bus.send(EventNotificationPublished, p)
}

// SubscribeItemCreated registers a handler for item.created events.
func (bus *EventBus) SubscribeItemCreated(fn func(ItemCreatedPayload)) {
	bus.subscribe(EventItemCreated, func(v any) {
		if p, ok := v.(ItemCreatedPayload); ok {
			fn(p)
		}
	})
}

// SubscribeItemUpdated registers a handler for item.updated events.
func (bus *EventBus) SubscribeItemUpdated(fn func(ItemUpdatedPayload)) {
	bus.subscribe(EventItemUpdated, func(v any) {
		if p, ok := v.(ItemUpdatedPayload); ok {
			fn(p)
		}
	})
}

// SubscribeItemDeleted registers a handler for item.deleted events.
func (bus *EventBus) SubscribeItemDeleted(fn func(ItemDeletedPayload)) {
	bus.subscribe(EventItemDeleted, func(v any) {
		if p, ok := v.(ItemDeletedPayload); ok {
			fn(p)
		}
	})
}

// SubscribeScopeCreated registers a handler for scope.created events.
func (bus *EventBus) SubscribeScopeCreated(fn func(ScopeCreatedPayload)) {
	bus.subscribe(EventScopeCreated, func(v any) {
		if p, ok := v.(ScopeCreatedPayload); ok {
			fn(p)
		}
	})
}

// SubscribeScopeUpdated registers a handler for scope.updated events.
func (bus *EventBus) SubscribeScopeUpdated(fn func(ScopeUpdatedPayload)) {
	bus.subscribe(EventScopeUpdated, func(v any) {
		if p, ok := v.(ScopeUpdatedPayload); ok {
			fn(p)
		}
	})
}

// SubscribeScopeArchived registers a handler for scope.archived events.
func (bus *EventBus) SubscribeScopeArchived(fn func(ScopeArchivedPayload)) {
	bus.subscribe(EventScopeArchived, func(v any) {
		if p, ok := v.(ScopeArchivedPayload); ok {
			fn(p)
		}
	})
}

// SubscribeScopeDeleted registers a handler for scope.deleted events.
func (bus *EventBus) SubscribeScopeDeleted(fn func(ScopeDeletedPayload)) {
	bus.subscribe(EventScopeDeleted, func(v any) {
		if p, ok := v.(ScopeDeletedPayload); ok {
			fn(p)
		}
	})
}

// SubscribeFormCancelled registers a handler for form.cancelled events.
func (bus *EventBus) SubscribeFormCancelled(fn func(FormCancelledPayload)) {
	bus.subscribe(EventFormCancelled, func(v any) {
		if p, ok := v.(FormCancelledPayload); ok {
			fn(p)
		}
	})
}

// SubscribeNotificationPublished registers a handler for notification.published events.
func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	bus.subscribe(EventNotificationPublished, func(v any) {
		if p, ok := v.(NotificationPublishedPayload); ok {
			fn(p)
		}
	})
}
