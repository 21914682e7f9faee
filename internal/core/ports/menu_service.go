package ports

import (
	"context"

	"github.com/opsdeck/console/internal/core/domain"
)

// MenuService is the menu configuration store.
type MenuService interface {
	ListAll(ctx context.Context) ([]domain.MenuConfiguration, error)
	Get(ctx context.Context, id string) (*domain.MenuConfiguration, error)
	// Upsert inserts or fully replaces cfg, renumbering its items first.
	// It fails with ErrConflictingEdit when cfg, or an override it would
	// demote, is open in a dirty draft.
	Upsert(ctx context.Context, cfg domain.MenuConfiguration) (*domain.MenuConfiguration, error)
	Duplicate(ctx context.Context, sourceID string) (*domain.MenuConfiguration, error)
	Create(ctx context.Context, name string, role domain.Role) (*domain.MenuConfiguration, error)
	AssignRole(ctx context.Context, id string, role domain.Role) (*domain.MenuConfiguration, error)
	Delete(ctx context.Context, id string) error

	// PlanModule returns the configurations a module cascade would change:
	// those lacking moduleID when activating, those holding it otherwise.
	// It fails with ErrConflictingEdit when one of them is open in a dirty
	// draft.
	PlanModule(ctx context.Context, moduleID string, active bool) ([]string, error)
	// ApplyModule adds or removes the module's item in every planned
	// configuration and returns their ids.
	ApplyModule(ctx context.Context, m domain.AvailableModule, active bool) ([]string, error)
}

// ItemInput is the payload for a new menu item.
type ItemInput struct {
	Label string `validate:"required,notblank"`
	Icon  string
	Path  string `validate:"required,notblank"`
}

// ItemPatch changes only the fields that are set.
type ItemPatch struct {
	Label *string `validate:"omitnil,notblank"`
	Icon  *string
	Path  *string `validate:"omitnil,notblank"`
}

// EditorService stages edits to one configuration at a time.
type EditorService interface {
	BeginEdit(ctx context.Context, configID string) (*domain.MenuConfiguration, error)
	Draft() (*domain.MenuConfiguration, bool, error)
	Reorder(from, to int) (*domain.MenuConfiguration, error)
	SetVisible(itemID string, visible bool) (*domain.MenuItem, error)
	SetDisabled(itemID string, disabled bool) (*domain.MenuItem, error)
	AddItem(in ItemInput) (*domain.MenuItem, error)
	EditItem(itemID string, patch ItemPatch) (*domain.MenuItem, error)
	RemoveItem(itemID string) error
	Commit(ctx context.Context) (*domain.MenuConfiguration, error)
	Discard()
}
