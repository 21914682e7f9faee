package ports

import (
	"context"

	"github.com/opsdeck/console/internal/core/domain"
)

// ModuleFilter narrows a catalog listing. Zero values match everything.
type ModuleFilter struct {
	Search     string
	Category   domain.Category
	ActiveOnly bool
}

// ToggleResult reports a module's new state and the configurations whose
// item set changed because of it.
type ToggleResult struct {
	Module                 domain.AvailableModule
	AffectedConfigurations []string
}

// ModuleSummary backs the module manager's counters.
type ModuleSummary struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Premium int `json:"premium"`
}

// CategoryCount is one row of the module manager's category tabs.
type CategoryCount struct {
	Category domain.Category `json:"category"`
	Total    int             `json:"total"`
	Active   int             `json:"active"`
}

// ModuleService is the catalog and activation registry.
type ModuleService interface {
	List(ctx context.Context, filter ModuleFilter) ([]domain.AvailableModule, error)
	Get(ctx context.Context, id string) (*domain.AvailableModule, error)
	Toggle(ctx context.Context, id string) (*ToggleResult, error)
	// SetActive moves every listed module to the requested state, all or
	// nothing. Modules already there are left out of the result.
	SetActive(ctx context.Context, ids []string, active bool) ([]ToggleResult, error)
	Summary(ctx context.Context) (ModuleSummary, error)
	// Categories lists every category in display order, empty ones included.
	Categories(ctx context.Context) ([]CategoryCount, error)
}
