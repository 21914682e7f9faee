package ports

import (
	"context"

	"github.com/opsdeck/console/internal/core/domain"
)

// NavEntry is a resolved navigation entry ready for the shell.
type NavEntry struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Icon        domain.Icon `json:"icon"`
	Glyph       string      `json:"glyph"`
	Path        string      `json:"path"`
	Order       int         `json:"order"`
	Activatable bool        `json:"activatable"`
}

// NavigationService resolves the navigation a role sees.
type NavigationService interface {
	// Current resolves for the signed-in user's current role.
	Current(ctx context.Context) ([]NavEntry, error)
	ResolveFor(ctx context.Context, role domain.Role) ([]NavEntry, error)
}
