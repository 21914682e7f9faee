package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// MenuHandler exposes the menu configuration store to administrators.
type MenuHandler struct {
	menus  ports.MenuService
	runner Runner
}

func NewMenuHandler(menus ports.MenuService, runner Runner) *MenuHandler {
	return &MenuHandler{menus: menus, runner: runner}
}

// List handles GET /admin/menus.
//
// @Summary      List menu configurations
// @Tags         menus
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  menuListResponse
// @Router       /admin/menus [get]
func (h *MenuHandler) List(c echo.Context) error {
	var all []domain.MenuConfiguration
	err := run(c, h.runner, "menu_list", func(ctx context.Context) error {
		var err error
		all, err = h.menus.ListAll(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menuListResponse{Configurations: all, Total: len(all)})
}

// Get handles GET /admin/menus/:id.
//
// @Summary      Get a menu configuration
// @Tags         menus
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Configuration id"
// @Success      200  {object}  domain.MenuConfiguration
// @Failure      404  {object}  errorResponse
// @Router       /admin/menus/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	return h.respond(c, http.StatusOK, "menu_get", func(ctx context.Context) (*domain.MenuConfiguration, error) {
		return h.menus.Get(ctx, c.Param("id"))
	})
}

// Create handles POST /admin/menus.
//
// @Summary      Create a menu configuration
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMenuRequest  true  "Name and role"
// @Success      201   {object}  domain.MenuConfiguration
// @Failure      422   {object}  errorResponse
// @Router       /admin/menus [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req createMenuRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, "menu_create", func(ctx context.Context) (*domain.MenuConfiguration, error) {
		return h.menus.Create(ctx, req.Name, role)
	})
}

// Put handles PUT /admin/menus/:id: insert or full replace.
//
// @Summary      Upsert a menu configuration
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Configuration id"
// @Param        body  body      upsertMenuRequest  true  "Configuration"
// @Success      200   {object}  domain.MenuConfiguration
// @Failure      422   {object}  errorResponse
// @Router       /admin/menus/{id} [put]
func (h *MenuHandler) Put(c echo.Context) error {
	var req upsertMenuRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cfg, err := toMenuConfiguration(c.Param("id"), req)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, "menu_upsert", func(ctx context.Context) (*domain.MenuConfiguration, error) {
		return h.menus.Upsert(ctx, cfg)
	})
}

// Duplicate handles POST /admin/menus/:id/duplicate.
//
// @Summary      Duplicate a menu configuration
// @Tags         menus
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Source configuration id"
// @Success      201  {object}  domain.MenuConfiguration
// @Failure      404  {object}  errorResponse
// @Router       /admin/menus/{id}/duplicate [post]
func (h *MenuHandler) Duplicate(c echo.Context) error {
	return h.respond(c, http.StatusCreated, "menu_duplicate", func(ctx context.Context) (*domain.MenuConfiguration, error) {
		return h.menus.Duplicate(ctx, c.Param("id"))
	})
}

// AssignRole handles PUT /admin/menus/:id/role.
//
// @Summary      Bind a configuration to a role
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Configuration id"
// @Param        body  body      assignRoleRequest  true  "Role, or custom to unbind"
// @Success      200   {object}  domain.MenuConfiguration
// @Failure      409   {object}  errorResponse
// @Router       /admin/menus/{id}/role [put]
func (h *MenuHandler) AssignRole(c echo.Context) error {
	var req assignRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, "menu_assign_role", func(ctx context.Context) (*domain.MenuConfiguration, error) {
		return h.menus.AssignRole(ctx, c.Param("id"), role)
	})
}

// Delete handles DELETE /admin/menus/:id.
//
// @Summary      Delete a custom configuration
// @Tags         menus
// @Security     BearerAuth
// @Param        id   path  string  true  "Configuration id"
// @Success      204
// @Failure      409  {object}  errorResponse
// @Router       /admin/menus/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	err := run(c, h.runner, "menu_delete", func(ctx context.Context) error {
		return h.menus.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MenuHandler) respond(c echo.Context, status int, action string, fn func(context.Context) (*domain.MenuConfiguration, error)) error {
	var cfg *domain.MenuConfiguration
	err := run(c, h.runner, action, func(ctx context.Context) error {
		var err error
		cfg, err = fn(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(status, cfg)
}
