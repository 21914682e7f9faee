package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// ModuleService owns activation state. Activating a module injects its item
// into every configuration; deactivating removes it from all of them.
type ModuleService struct {
	repo   ports.ModuleRepository
	menus  ports.MenuService
	logger zerolog.Logger
}

func NewModuleService(repo ports.ModuleRepository, menus ports.MenuService, logger zerolog.Logger) *ModuleService {
	return &ModuleService{repo: repo, menus: menus, logger: logger}
}

// List returns catalog entries in catalog order. Search matches name or
// description case-insensitively.
func (s *ModuleService) List(ctx context.Context, filter ports.ModuleFilter) ([]domain.AvailableModule, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.AvailableModule, 0, len(all))
	for _, m := range all {
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && !m.IsActive {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Description), search) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *ModuleService) Get(ctx context.Context, id string) (*domain.AvailableModule, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, id)
	}
	return m, nil
}

// Toggle flips one module. The menus are rewritten first; the module's own
// flag only moves once every configuration agrees with it.
func (s *ModuleService) Toggle(ctx context.Context, id string) (*ports.ToggleResult, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, *m, !m.IsActive)
}

func (s *ModuleService) SetActive(ctx context.Context, ids []string, active bool) ([]ports.ToggleResult, error) {
	pending := make([]domain.AvailableModule, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		m, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if m.IsActive == active {
			continue
		}
		if _, err := s.menus.PlanModule(ctx, m.ID, active); err != nil {
			return nil, err
		}
		pending = append(pending, *m)
	}

	results := make([]ports.ToggleResult, 0, len(pending))
	for _, m := range pending {
		res, err := s.apply(ctx, m, active)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

func (s *ModuleService) Summary(ctx context.Context) (ports.ModuleSummary, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return ports.ModuleSummary{}, fmt.Errorf("module summary: %w", err)
	}
	sum := ports.ModuleSummary{Total: len(all)}
	for _, m := range all {
		if m.IsActive {
			sum.Active++
		}
		if m.IsPremium {
			sum.Premium++
		}
	}
	return sum, nil
}

func (s *ModuleService) Categories(ctx context.Context) ([]ports.CategoryCount, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("module categories: %w", err)
	}
	out := make([]ports.CategoryCount, len(domain.Categories))
	pos := make(map[domain.Category]int, len(domain.Categories))
	for i, c := range domain.Categories {
		out[i].Category = c
		pos[c] = i
	}
	for _, m := range all {
		i, ok := pos[m.Category]
		if !ok {
			continue
		}
		out[i].Total++
		if m.IsActive {
			out[i].Active++
		}
	}
	return out, nil
}

func (s *ModuleService) apply(ctx context.Context, m domain.AvailableModule, active bool) (*ports.ToggleResult, error) {
	affected, err := s.menus.ApplyModule(ctx, m, active)
	if err != nil {
		return nil, fmt.Errorf("toggle %s: %w", m.ID, err)
	}

	m.IsActive = active
	if err := s.repo.Save(ctx, &m); err != nil {
		return nil, fmt.Errorf("toggle %s: %w", m.ID, err)
	}

	s.logger.Info().
		Str("module_id", m.ID).
		Bool("active", active).
		Int("affected", len(affected)).
		Msg("module toggled")

	return &ports.ToggleResult{Module: m, AffectedConfigurations: affected}, nil
}
