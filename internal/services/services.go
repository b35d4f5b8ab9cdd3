// Package services exposes the application's operations behind result
// envelopes. Commands and the TUI consume Services instead of cherry-picking
// stores and the event bus.
package services

import (
	"github.com/colonyops/scopepad/internal/core/eventbus"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/rs/zerolog"
)

// Services is the central entry point for all scopepad operations.
type Services struct {
	Items  *ItemService
	Scopes *ScopeService
}

// New constructs the service registry from explicit dependencies.
func New(items scope.ItemStore, scopes scope.ScopeStore, bus *eventbus.EventBus, log zerolog.Logger) *Services {
	return &Services{
		Items:  NewItemService(items, scopes, bus, log),
		Scopes: NewScopeService(scopes, bus, log),
	}
}
