package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
	"github.com/opsdeck/console/internal/core/seed"
	"github.com/opsdeck/console/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Stub auth provider
// ---------------------------------------------------------------------------

type stubProvider struct {
	roles []domain.Role
	err   error
	calls int
}

func (p *stubProvider) Authenticate(_ context.Context, creds ports.Credentials) (*ports.Identity, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &ports.Identity{UserID: "user-" + creds.Email, PermittedRoles: p.roles}, nil
}

// ---------------------------------------------------------------------------
// Seeded engine
// ---------------------------------------------------------------------------

type fixture struct {
	menuRepo   *memory.MenuRepository
	moduleRepo *memory.ModuleRepository
	menus      *MenuService
	editor     *EditorService
	modules    *ModuleService
	flags      *FlagService
	identity   *IdentityService
	nav        *NavigationService
	provider   *stubProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		menuRepo:   memory.NewMenuRepository(),
		moduleRepo: memory.NewModuleRepository(),
		provider:   &stubProvider{roles: []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee}},
	}
	if err := seed.Load(ctx, f.menuRepo, f.moduleRepo); err != nil {
		t.Fatalf("seed: %v", err)
	}

	log := zerolog.Nop()
	f.menus = NewMenuService(f.menuRepo, f.moduleRepo, log)
	f.editor = NewEditorService(f.menus, log)
	f.menus.SetDraftGuard(f.editor)
	f.modules = NewModuleService(f.moduleRepo, f.menus, log)
	f.flags = NewFlagService(seed.DefaultFlags(), log)
	f.identity = NewIdentityService(f.provider, log)
	f.nav = NewNavigationService(f.identity, f.menus, f.flags)
	return f
}

func (f *fixture) config(t *testing.T, id string) *domain.MenuConfiguration {
	t.Helper()
	cfg, err := f.menus.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return cfg
}

func itemIDs(cfg *domain.MenuConfiguration) []string {
	out := make([]string, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		out = append(out, item.ID)
	}
	return out
}

func assertDense(t *testing.T, cfg *domain.MenuConfiguration) {
	t.Helper()
	for i, item := range cfg.Items {
		if item.Order != i+1 {
			t.Fatalf("%s: item %s at position %d has order %d", cfg.ID, item.ID, i, item.Order)
		}
	}
}
