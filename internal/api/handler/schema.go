package handler

import (
	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// --- Session ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
	Company  string `json:"company"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type switchRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type switchRoleResponse struct {
	User    domain.User `json:"user"`
	Changed bool        `json:"changed"`
}

// --- Navigation ---

type navigationResponse struct {
	Role    domain.Role      `json:"role"`
	Entries []ports.NavEntry `json:"entries"`
}

// --- Menus ---

type menuItemRequest struct {
	ID       string `json:"id"    validate:"required,notblank"`
	Label    string `json:"label" validate:"required,notblank"`
	Icon     string `json:"icon"`
	Path     string `json:"path"  validate:"required,notblank"`
	Visible  bool   `json:"visible"`
	Disabled bool   `json:"disabled"`
	Order    int    `json:"order"`
}

type upsertMenuRequest struct {
	Name  string            `json:"name"  validate:"required,notblank"`
	Role  string            `json:"role"  validate:"required"`
	Items []menuItemRequest `json:"items" validate:"dive"`
}

type createMenuRequest struct {
	Name string `json:"name" validate:"required,notblank"`
	Role string `json:"role" validate:"required"`
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type menuListResponse struct {
	Configurations []domain.MenuConfiguration `json:"configurations"`
	Total          int                        `json:"total"`
}

// --- Draft ---

type beginEditRequest struct {
	ConfigID string `json:"config_id" validate:"required,notblank"`
}

type draftResponse struct {
	Configuration *domain.MenuConfiguration `json:"configuration"`
	Dirty         bool                      `json:"dirty"`
}

type reorderRequest struct {
	From *int `json:"from" validate:"required"`
	To   *int `json:"to"   validate:"required"`
}

type flagValueRequest struct {
	Value *bool `json:"value" validate:"required"`
}

type addItemRequest struct {
	Label string `json:"label" validate:"required,notblank"`
	Icon  string `json:"icon"`
	Path  string `json:"path"  validate:"required,notblank"`
}

type editItemRequest struct {
	Label *string `json:"label"`
	Icon  *string `json:"icon"`
	Path  *string `json:"path"`
}

// --- Modules ---

type bulkModulesRequest struct {
	IDs    []string `json:"ids"    validate:"required,min=1,dive,required"`
	Active *bool    `json:"active" validate:"required"`
}

type toggleResponse struct {
	Module                 domain.AvailableModule `json:"module"`
	AffectedConfigurations []string               `json:"affected_configurations"`
}

type moduleListResponse struct {
	Modules []domain.AvailableModule `json:"modules"`
	Total   int                      `json:"total"`
}

// --- Flags ---

type flagEntry struct {
	Key     domain.FeatureKey `json:"key"`
	Enabled bool              `json:"enabled"`
}

type flagsResponse struct {
	Flags []flagEntry `json:"flags"`
}
