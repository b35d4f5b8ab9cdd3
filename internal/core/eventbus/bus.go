// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within scopepad.
package eventbus

import (
	"context"
	"sync"
)

// Event names a bus event type.
type Event string

// All event types, sorted A-Z.
const (
	EventFormCancelled         Event = "form.cancelled"
	EventItemCreated           Event = "item.created"
	EventItemDeleted           Event = "item.deleted"
	EventItemUpdated           Event = "item.updated"
	EventNotificationPublished Event = "notification.published"
	EventScopeArchived         Event = "scope.archived"
	EventScopeCreated          Event = "scope.created"
	EventScopeDeleted          Event = "scope.deleted"
	EventScopeUpdated          Event = "scope.updated"
)

// envelope pairs an event with its payload on the dispatch channel.
type envelope struct {
	event   Event
	payload any
}

// EventBus is a buffered, asynchronous pub/sub bus. Publish never blocks:
// when the buffer is full the event is dropped and the OnDrop hooks fire.
// Subscribers run sequentially on the Run goroutine; a panicking subscriber
// is recovered and reported through OnPanic.
type EventBus struct {
	ch    chan envelope
	mu    sync.RWMutex
	subs  map[Event][]func(any)
	hooks hooks
}

// New creates a bus with the given buffer size.
func New(buffer int) *EventBus {
	return &EventBus{
		ch:   make(chan envelope, buffer),
		subs: make(map[Event][]func(any)),
	}
}

// Run dispatches events until ctx is cancelled. Call it once, from its own
// goroutine.
func (bus *EventBus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

// send enqueues an event and fires hooks. Used by the typed Publish methods.
func (bus *EventBus) send(event Event, payload any) {
	select {
	case bus.ch <- envelope{event: event, payload: payload}:
		bus.hooks.runOnPublish(event, payload)
	default:
		bus.hooks.runOnDrop(event, payload)
	}
}

// subscribe registers an untyped handler. Used by the typed Subscribe methods.
func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()
	bus.hooks.runOnSubscribe(event)
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	handlers := make([]func(any), len(bus.subs[env.event]))
	copy(handlers, bus.subs[env.event])
	bus.mu.RUnlock()

	for _, fn := range handlers {
		bus.call(env, fn)
	}
}

func (bus *EventBus) call(env envelope, fn func(any)) {
	defer func() {
		if r := recover(); r != nil {
			bus.hooks.runOnPanic(env.event, env.payload, r)
		}
	}()
	fn(env.payload)
}
