package eventbus

import "sync"

// hooks holds the lifecycle hook state for the EventBus, kept separate from
// the typed Publish/Subscribe surface.
type hooks struct {
	mu          sync.RWMutex
	onPublish   []func(Event, any)
	onDrop      []func(Event, any)
	onSubscribe []func(Event)
	onPanic     []func(Event, any, any)
}

// OnPublish registers a hook that fires after an event is successfully enqueued.
func (bus *EventBus) OnPublish(fn func(Event, any)) {
	bus.hooks.mu.Lock()
	bus.hooks.onPublish = append(bus.hooks.onPublish, fn)
	bus.hooks.mu.Unlock()
}

// OnDrop registers a hook that fires when an event is dropped due to a full buffer.
func (bus *EventBus) OnDrop(fn func(Event, any)) {
	bus.hooks.mu.Lock()
	bus.hooks.onDrop = append(bus.hooks.onDrop, fn)
	bus.hooks.mu.Unlock()
}

// OnSubscribe registers a hook that fires after a subscriber is registered.
func (bus *EventBus) OnSubscribe(fn func(Event)) {
	bus.hooks.mu.Lock()
	bus.hooks.onSubscribe = append(bus.hooks.onSubscribe, fn)
	bus.hooks.mu.Unlock()
}

// OnPanic registers a hook that fires when a subscriber panics.
func (bus *EventBus) OnPanic(fn func(Event, any, any)) {
	bus.hooks.mu.Lock()
	bus.hooks.onPanic = append(bus.hooks.onPanic, fn)
	bus.hooks.mu.Unlock()
}

func (h *hooks) runOnPublish(event Event, payload any) {
	h.mu.RLock()
	fns := make([]func(Event, any), len(h.onPublish))
	copy(fns, h.onPublish)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(event, payload)
	}
}

func (h *hooks) runOnDrop(event Event, payload any) {
	h.mu.RLock()
	fns := make([]func(Event, any), len(h.onDrop))
	copy(fns, h.onDrop)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(event, payload)
	}
}

func (h *hooks) runOnSubscribe(event Event) {
	h.mu.RLock()
	fns := make([]func(Event), len(h.onSubscribe))
	copy(fns, h.onSubscribe)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(event)
	}
}

func (h *hooks) runOnPanic(event Event, payload any, recovered any) {
	h.mu.RLock()
	fns := make([]func(Event, any, any), len(h.onPanic))
	copy(fns, h.onPanic)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(event, payload, recovered)
	}
}
