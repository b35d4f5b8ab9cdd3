// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/hay-kot/criterio"
)

// ScopeName validates a scope name is non-empty after trimming whitespace.
func ScopeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ScopeNameField returns a criterio validator for scope names.
func ScopeNameField(field, name string) error {
	return criterio.Run(field, name, ScopeName)
}

// ScopeColor validates an optional hex color like "#7c3aed".
func ScopeColor(color string) error {
	if color == "" {
		return nil
	}
	if len(color) != 7 || color[0] != '#' {
		return fmt.Errorf("color must be a #rrggbb hex value")
	}
	for _, c := range color[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return fmt.Errorf("color must be a #rrggbb hex value")
		}
	}
	return nil
}

// ItemPriority validates an optional priority level.
func ItemPriority(p string) error {
	if !scope.Priority(p).Valid() {
		return fmt.Errorf("priority must be one of low, medium, high, critical, urgent")
	}
	return nil
}

// ItemStatus validates a status value.
func ItemStatus(s string) error {
	if s == "" {
		return nil
	}
	if !scope.Status(s).Valid() {
		return fmt.Errorf("status must be one of not_started, in_progress, blocked, review, done")
	}
	return nil
}
