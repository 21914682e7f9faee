package service

import (
	"context"
	"slices"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// NavigationService turns stored configurations into the navigation the
// shell renders for a role.
type NavigationService struct {
	identity ports.IdentityService
	menus    ports.MenuService
	flags    ports.FlagService
}

func NewNavigationService(identity ports.IdentityService, menus ports.MenuService, flags ports.FlagService) *NavigationService {
	return &NavigationService{identity: identity, menus: menus, flags: flags}
}

func (s *NavigationService) Current(ctx context.Context) ([]ports.NavEntry, error) {
	user, ok := s.identity.Current()
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return s.ResolveFor(ctx, user.CurrentRole)
}

func (s *NavigationService) ResolveFor(ctx context.Context, role domain.Role) ([]ports.NavEntry, error) {
	configs, err := s.menus.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Resolve(role, configs, s.flags.Get()), nil
}

// Select picks the configuration a role navigates with: its custom override
// when one exists, the role's default otherwise. It returns nil when the
// role has neither.
func Select(role domain.Role, configs []domain.MenuConfiguration) *domain.MenuConfiguration {
	var fallback *domain.MenuConfiguration
	for i := range configs {
		cfg := &configs[i]
		if cfg.Role != role {
			continue
		}
		if !cfg.IsDefault {
			return cfg
		}
		if fallback == nil {
			fallback = cfg
		}
	}
	return fallback
}

// Resolve keeps visible items whose feature flag, if any, is on, in order.
// Disabled items stay in the list but are not activatable.
func Resolve(role domain.Role, configs []domain.MenuConfiguration, flags domain.FeatureFlags) []ports.NavEntry {
	cfg := Select(role, configs)
	if cfg == nil {
		return []ports.NavEntry{}
	}

	entries := make([]ports.NavEntry, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		if !item.Visible || flags.Suppresses(item.ID) {
			continue
		}
		entries = append(entries, ports.NavEntry{
			ID:          item.ID,
			Label:       item.Label,
			Icon:        item.Icon,
			Glyph:       item.Icon.Glyph(),
			Path:        item.Path,
			Order:       item.Order,
			Activatable: !item.Disabled,
		})
	}
	slices.SortStableFunc(entries, func(a, b ports.NavEntry) int {
		return a.Order - b.Order
	})
	return entries
}
