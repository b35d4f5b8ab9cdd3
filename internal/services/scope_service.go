package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/colonyops/scopepad/internal/core/eventbus"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/core/validate"
	"github.com/colonyops/scopepad/pkg/result"
	"github.com/rs/zerolog"
)

// ScopeService wraps the scope store with name validation, system-scope
// protection, and event publishing.
type ScopeService struct {
	scopes scope.ScopeStore
	bus    *eventbus.EventBus
	log    zerolog.Logger
}

// NewScopeService creates a new ScopeService.
func NewScopeService(scopes scope.ScopeStore, bus *eventbus.EventBus, log zerolog.Logger) *ScopeService {
	return &ScopeService{
		scopes: scopes,
		bus:    bus,
		log:    log.With().Str("component", "scope-service").Logger(),
	}
}

// systemScopeNames maps each built-in type to the name of its seeded scope.
var systemScopeNames = map[scope.Type]string{
	scope.TypeTodo:       "Todos",
	scope.TypeNote:       "Notes",
	scope.TypeBrainstorm: "Brainstorms",
	scope.TypeChecklist:  "Checklists",
	scope.TypeMilestone:  "Milestones",
	scope.TypeResource:   "Resources",
	scope.TypeBookmark:   "Bookmarks",
	scope.TypeEvent:      "Events",
	scope.TypeTimeblock:  "Timeblocks",
	scope.TypeFlow:       "Flows",
}

// Seed creates one system scope per built-in type. Existing system scopes
// are left alone, so Seed is safe to call on every startup.
func (s *ScopeService) Seed(ctx context.Context) error {
	existing, err := s.scopes.List(ctx, scope.ScopeFilter{IncludeArchived: true})
	if err != nil {
		return fmt.Errorf("list scopes for seeding: %w", err)
	}

	seeded := map[scope.Type]bool{}
	for _, sc := range existing {
		if sc.IsSystem {
			seeded[sc.Type] = true
		}
	}

	created := 0
	for i, t := range scope.BuiltInTypes() {
		if seeded[t] {
			continue
		}

		sc := scope.Scope{
			Name:      systemScopeNames[t],
			Type:      t,
			IsSystem:  true,
			SortOrder: i,
		}
		if err := s.scopes.Create(ctx, &sc); err != nil {
			return fmt.Errorf("seed %s scope: %w", t, err)
		}
		s.log.Debug().Str("type", string(t)).Str("id", sc.ID).Msg("seeded system scope")
		created++
	}

	if created > 0 {
		s.bus.PublishNotificationPublished(eventbus.NotificationPublishedPayload{
			Level:   eventbus.LevelInfo,
			Message: fmt.Sprintf("seeded %d system scopes", created),
		})
	}

	return nil
}

// CreateScope creates a user scope. System scopes only come from Seed.
func (s *ScopeService) CreateScope(ctx context.Context, sc scope.Scope) (res result.Result[scope.Scope]) {
	defer result.Recover(&res)

	if err := validate.ScopeName(sc.Name); err != nil {
		return result.Err[scope.Scope](err)
	}
	if err := validate.ScopeColor(sc.Color); err != nil {
		return result.Err[scope.Scope](err)
	}

	sc.Name = strings.TrimSpace(sc.Name)
	sc.IsSystem = false
	if sc.Type == "" {
		sc.Type = scope.TypeTodo
	}

	if err := s.scopes.Create(ctx, &sc); err != nil {
		return result.Err[scope.Scope](err)
	}

	s.bus.PublishScopeCreated(eventbus.ScopeCreatedPayload{Scope: &sc})
	s.log.Debug().Str("id", sc.ID).Str("name", sc.Name).Msg("scope created")

	return result.Ok(sc)
}

// UpdateScope replaces the stored record for id. The type of a system scope
// is immutable; all other fields may change.
func (s *ScopeService) UpdateScope(ctx context.Context, id string, sc scope.Scope) (res result.Result[scope.Scope]) {
	defer result.Recover(&res)

	existing, err := s.scopes.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Scope](err)
	}
	if existing.Deleted() {
		return result.Errf[scope.Scope]("scope %q has been deleted", id)
	}
	if existing.IsSystem && sc.Type != "" && sc.Type != existing.Type {
		return result.Err[scope.Scope](scope.ErrSystemScopeType)
	}

	if err := validate.ScopeName(sc.Name); err != nil {
		return result.Err[scope.Scope](err)
	}
	if err := validate.ScopeColor(sc.Color); err != nil {
		return result.Err[scope.Scope](err)
	}

	sc.ID = id
	sc.Name = strings.TrimSpace(sc.Name)
	sc.Type = existing.Type
	sc.IsSystem = existing.IsSystem
	sc.CreatedAt = existing.CreatedAt

	if err := s.scopes.Update(ctx, sc); err != nil {
		return result.Err[scope.Scope](err)
	}

	s.bus.PublishScopeUpdated(eventbus.ScopeUpdatedPayload{Scope: &sc})

	return result.Ok(sc)
}

// GetScope returns a single scope by ID.
func (s *ScopeService) GetScope(ctx context.Context, id string) (res result.Result[scope.Scope]) {
	defer result.Recover(&res)

	sc, err := s.scopes.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Scope](err)
	}

	return result.Ok(sc)
}

// FindScope resolves a scope by ID or exact name, trying ID first.
func (s *ScopeService) FindScope(ctx context.Context, ref string) (res result.Result[scope.Scope]) {
	defer result.Recover(&res)

	if sc, err := s.scopes.Get(ctx, ref); err == nil {
		return result.Ok(sc)
	}

	scopes, err := s.scopes.List(ctx, scope.ScopeFilter{IncludeArchived: true})
	if err != nil {
		return result.Err[scope.Scope](err)
	}
	for _, sc := range scopes {
		if strings.EqualFold(sc.Name, ref) {
			return result.Ok(sc)
		}
	}

	return result.Err[scope.Scope](scope.ErrScopeNotFound)
}

// ListScopes returns scopes matching the filter.
func (s *ScopeService) ListScopes(ctx context.Context, filter scope.ScopeFilter) (res result.Result[[]scope.Scope]) {
	defer result.Recover(&res)

	scopes, err := s.scopes.List(ctx, filter)
	if err != nil {
		return result.Err[[]scope.Scope](err)
	}

	return result.Ok(scopes)
}

// ArchiveScope archives a scope. Its items are kept but the scope stops
// accepting new ones.
func (s *ScopeService) ArchiveScope(ctx context.Context, id string) (res result.Result[scope.Scope]) {
	defer result.Recover(&res)

	if err := s.scopes.Archive(ctx, id); err != nil {
		return result.Err[scope.Scope](err)
	}

	sc, err := s.scopes.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Scope](err)
	}

	s.bus.PublishScopeArchived(eventbus.ScopeArchivedPayload{ScopeID: id})

	return result.Ok(sc)
}

// DeleteScope soft-deletes a user scope. System scopes cannot be deleted.
func (s *ScopeService) DeleteScope(ctx context.Context, id string) (res result.Result[scope.Scope]) {
	defer result.Recover(&res)

	sc, err := s.scopes.Get(ctx, id)
	if err != nil {
		return result.Err[scope.Scope](err)
	}
	if sc.IsSystem {
		return result.Errf[scope.Scope]("system scope %q cannot be deleted", sc.Name)
	}

	if err := s.scopes.SoftDelete(ctx, id); err != nil {
		return result.Err[scope.Scope](err)
	}

	s.bus.PublishScopeDeleted(eventbus.ScopeDeletedPayload{ScopeID: id})
	s.log.Debug().Str("id", id).Str("name", sc.Name).Msg("scope deleted")

	return result.Ok(sc)
}
