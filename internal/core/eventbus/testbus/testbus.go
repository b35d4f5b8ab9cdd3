// Package testbus provides test utilities for the event bus.
// It wraps a real EventBus with event recording and assertion helpers.
package testbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/scopepad/internal/core/eventbus"
)

// RecordedEvent holds a captured event name and payload.
type RecordedEvent struct {
	Event   eventbus.Event
	Payload any
}

// Bus wraps a real EventBus with event recording for tests.
type Bus struct {
	*eventbus.EventBus
	cancel context.CancelFunc

	mu     sync.Mutex
	events []RecordedEvent
}

// New creates a test bus, starts it in a background goroutine, and
// subscribes to all event types for recording. The bus is stopped
// when the test completes.
func New(t *testing.T) *Bus {
	t.Helper()

	bus := eventbus.New(64)
	ctx, cancel := context.WithCancel(context.Background())

	tb := &Bus{
		EventBus: bus,
		cancel:   cancel,
	}

	bus.SubscribeItemCreated(func(p eventbus.ItemCreatedPayload) {
		tb.record(eventbus.EventItemCreated, p)
	})
	bus.SubscribeItemUpdated(func(p eventbus.ItemUpdatedPayload) {
		tb.record(eventbus.EventItemUpdated, p)
	})
	bus.SubscribeItemDeleted(func(p eventbus.ItemDeletedPayload) {
		tb.record(eventbus.EventItemDeleted, p)
	})
	bus.SubscribeScopeCreated(func(p eventbus.ScopeCreatedPayload) {
		tb.record(eventbus.EventScopeCreated, p)
	})
	bus.SubscribeScopeUpdated(func(p eventbus.ScopeUpdatedPayload) {
		tb.record(eventbus.EventScopeUpdated, p)
	})
	bus.SubscribeScopeArchived(func(p eventbus.ScopeArchivedPayload) {
		tb.record(eventbus.EventScopeArchived, p)
	})
	bus.SubscribeScopeDeleted(func(p eventbus.ScopeDeletedPayload) {
		tb.record(eventbus.EventScopeDeleted, p)
	})
	bus.SubscribeFormCancelled(func(p eventbus.FormCancelledPayload) {
		tb.record(eventbus.EventFormCancelled, p)
	})
	bus.SubscribeNotificationPublished(func(p eventbus.NotificationPublishedPayload) {
		tb.record(eventbus.EventNotificationPublished, p)
	})

	go bus.Run(ctx)
	t.Cleanup(cancel)

	return tb
}

func (b *Bus) record(event eventbus.Event, payload any) {
	b.mu.Lock()
	b.events = append(b.events, RecordedEvent{Event: event, Payload: payload})
	b.mu.Unlock()
}

// Events returns a snapshot of all recorded events.
func (b *Bus) Events() []RecordedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedEvent(nil), b.events...)
}

// EventsOf returns recorded events matching the given type.
func (b *Bus) EventsOf(event eventbus.Event) []RecordedEvent {
	var out []RecordedEvent
	for _, e := range b.Events() {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}

// WaitFor blocks until at least n events of the given type are recorded or
// the timeout elapses, failing the test on timeout. Dispatch is
// asynchronous, so tests must wait rather than assert immediately.
func (b *Bus) WaitFor(t *testing.T, event eventbus.Event, n int) []RecordedEvent {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := b.EventsOf(event); len(got) >= n {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}

	got := b.EventsOf(event)
	t.Fatalf("timed out waiting for %d %s events, saw %d", n, event, len(got))
	return got
}

// AssertNone fails the test if any event of the given type was recorded.
func (b *Bus) AssertNone(t *testing.T, event eventbus.Event) {
	t.Helper()

	if got := b.EventsOf(event); len(got) > 0 {
		t.Fatalf("expected no %s events, saw %d", event, len(got))
	}
}
