package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
	"github.com/opsdeck/console/internal/core/seed"
)

// MenuService is the menu configuration store. Every write goes through
// Normalize, so stored items always carry orders 1..N.
type MenuService struct {
	repo    ports.MenuRepository
	modules ports.ModuleRepository
	guard   ports.DraftGuard
	logger  zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, modules ports.ModuleRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, modules: modules, logger: logger}
}

// SetDraftGuard installs the editor whose open draft writes must respect.
func (s *MenuService) SetDraftGuard(g ports.DraftGuard) {
	s.guard = g
}

func (s *MenuService) ListAll(ctx context.Context) ([]domain.MenuConfiguration, error) {
	return s.repo.List(ctx)
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuConfiguration, error) {
	return s.repo.Get(ctx, id)
}

// Upsert stores cfg as given, except that defaults are decided by the store:
// a new configuration is never default and a default keeps its role.
func (s *MenuService) Upsert(ctx context.Context, cfg domain.MenuConfiguration) (*domain.MenuConfiguration, error) {
	if strings.TrimSpace(cfg.ID) == "" {
		return nil, domain.NewValidationError("id", "must not be empty")
	}
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}
	if _, err := domain.ParseRole(string(cfg.Role)); err != nil {
		return nil, err
	}
	if err := cfg.CheckItemIDs(); err != nil {
		return nil, err
	}
	if err := s.checkDraft(cfg.ID); err != nil {
		return nil, err
	}

	next := cfg.Clone()
	existing, err := s.repo.Get(ctx, cfg.ID)
	switch {
	case err == nil && existing.IsDefault:
		next.Role = existing.Role
		next.IsDefault = true
	case err == nil, errors.Is(err, domain.ErrConfigNotFound):
		next.IsDefault = false
	default:
		return nil, fmt.Errorf("upsert %s: %w", cfg.ID, err)
	}
	next.Normalize()

	if err := s.claimRole(ctx, next); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, &next); err != nil {
		return nil, fmt.Errorf("upsert %s: %w", cfg.ID, err)
	}
	s.refresh(ctx, next.ID)

	s.logger.Info().Str("config_id", next.ID).Int("items", len(next.Items)).Msg("menu configuration stored")
	return s.repo.Get(ctx, next.ID)
}

// Duplicate copies sourceID into a new custom configuration.
func (s *MenuService) Duplicate(ctx context.Context, sourceID string) (*domain.MenuConfiguration, error) {
	src, err := s.repo.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	dup := src.Clone()
	dup.ID = fmt.Sprintf("%s-copy-%s", src.ID, shortID())
	dup.Name = src.Name + " (Copy)"
	dup.Role = domain.RoleCustom
	dup.IsDefault = false
	dup.Normalize()

	if err := s.repo.Save(ctx, &dup); err != nil {
		return nil, fmt.Errorf("duplicate %s: %w", sourceID, err)
	}

	s.logger.Info().Str("config_id", dup.ID).Str("source_id", sourceID).Msg("menu configuration duplicated")
	return s.repo.Get(ctx, dup.ID)
}

// Create seeds a configuration with the starter items plus every active
// catalog module, so it is never empty and never misses an active module.
func (s *MenuService) Create(ctx context.Context, name string, role domain.Role) (*domain.MenuConfiguration, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	cfg := domain.MenuConfiguration{
		ID:    "menu-" + shortID(),
		Name:  strings.TrimSpace(name),
		Role:  role,
		Items: seed.StarterItems(),
	}

	catalog, err := s.modules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}
	for _, m := range catalog {
		if m.IsActive && !cfg.Has(m.ID) {
			cfg.Items = append(cfg.Items, m.MenuItem())
		}
	}
	cfg.Renumber()

	if err := s.claimRole(ctx, cfg); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}

	s.logger.Info().Str("config_id", cfg.ID).Str("role", string(role)).Msg("menu configuration created")
	return s.repo.Get(ctx, cfg.ID)
}

// AssignRole makes a non-default configuration the override for role, or
// unbinds it when role is custom.
func (s *MenuService) AssignRole(ctx context.Context, id string, role domain.Role) (*domain.MenuConfiguration, error) {
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}
	cfg, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cfg.IsDefault {
		return nil, fmt.Errorf("assign role to %s: %w", id, domain.ErrProtectedConfig)
	}
	if err := s.checkDraft(id); err != nil {
		return nil, err
	}

	cfg.Role = role
	if err := s.claimRole(ctx, *cfg); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("assign role to %s: %w", id, err)
	}
	s.refresh(ctx, id)

	s.logger.Info().Str("config_id", id).Str("role", string(role)).Msg("menu configuration assigned")
	return s.repo.Get(ctx, id)
}

// Delete removes a custom configuration. An open clean draft of it is
// dropped; a dirty one blocks the deletion.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	cfg, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if cfg.IsDefault {
		return fmt.Errorf("delete %s: %w", id, domain.ErrProtectedConfig)
	}
	if err := s.checkDraft(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	s.refresh(ctx, id)

	s.logger.Info().Str("config_id", id).Msg("menu configuration deleted")
	return nil
}

func (s *MenuService) PlanModule(ctx context.Context, moduleID string, active bool) ([]string, error) {
	holders, err := s.repo.Containing(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("plan module %s: %w", moduleID, err)
	}

	affected := holders
	if active {
		held := make(map[string]struct{}, len(holders))
		for _, id := range holders {
			held[id] = struct{}{}
		}
		all, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("plan module %s: %w", moduleID, err)
		}
		affected = make([]string, 0, len(all))
		for _, cfg := range all {
			if _, ok := held[cfg.ID]; !ok {
				affected = append(affected, cfg.ID)
			}
		}
	}

	for _, id := range affected {
		if err := s.checkDraft(id); err != nil {
			return nil, err
		}
	}
	return affected, nil
}

// ApplyModule builds every changed configuration before saving any of
// them, so a failure leaves the store untouched.
func (s *MenuService) ApplyModule(ctx context.Context, m domain.AvailableModule, active bool) ([]string, error) {
	affected, err := s.PlanModule(ctx, m.ID, active)
	if err != nil {
		return nil, err
	}

	changed := make([]domain.MenuConfiguration, 0, len(affected))
	for _, id := range affected {
		cfg, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("apply module %s: %w", m.ID, err)
		}
		if active {
			item := m.MenuItem()
			item.Order = len(cfg.Items) + 1
			cfg.Items = append(cfg.Items, item)
		} else {
			kept := cfg.Items[:0]
			for _, item := range cfg.Items {
				if item.ID != m.ID {
					kept = append(kept, item)
				}
			}
			cfg.Items = kept
		}
		cfg.Normalize()
		changed = append(changed, *cfg)
	}

	for i := range changed {
		if err := s.repo.Save(ctx, &changed[i]); err != nil {
			return nil, fmt.Errorf("apply module %s: %w", m.ID, err)
		}
		s.refresh(ctx, changed[i].ID)
	}
	return affected, nil
}

// claimRole demotes any other override of cfg's role so that at most one
// custom configuration overrides each role. Every demotion is checked
// against the open draft before the first one is saved.
func (s *MenuService) claimRole(ctx context.Context, cfg domain.MenuConfiguration) error {
	if cfg.IsDefault || !cfg.Role.IsUserRole() {
		return nil
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	var demoted []domain.MenuConfiguration
	for _, other := range all {
		if other.ID == cfg.ID || other.IsDefault || other.Role != cfg.Role {
			continue
		}
		if err := s.checkDraft(other.ID); err != nil {
			return err
		}
		demoted = append(demoted, other)
	}

	for i := range demoted {
		other := &demoted[i]
		other.Role = domain.RoleCustom
		if err := s.repo.Save(ctx, other); err != nil {
			return err
		}
		s.refresh(ctx, other.ID)
		s.logger.Info().Str("config_id", other.ID).Str("role", string(cfg.Role)).Msg("previous role override demoted")
	}
	return nil
}

func (s *MenuService) checkDraft(id string) error {
	if s.guard != nil && s.guard.HasUncommitted(id) {
		s.logger.Warn().Str("config_id", id).Msg("write refused: draft has uncommitted edits")
		return fmt.Errorf("%w: %s", domain.ErrConflictingEdit, id)
	}
	return nil
}

func (s *MenuService) refresh(ctx context.Context, id string) {
	if s.guard != nil {
		s.guard.Refresh(ctx, id)
	}
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
