package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/api/metrics"
	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// ModuleHandler exposes the module catalog and activation.
type ModuleHandler struct {
	modules ports.ModuleService
	runner  Runner
}

func NewModuleHandler(modules ports.ModuleService, runner Runner) *ModuleHandler {
	return &ModuleHandler{modules: modules, runner: runner}
}

// List handles GET /admin/modules.
//
// @Summary      List catalog modules
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Param        search    query     string  false  "Matches name or description"
// @Param        category  query     string  false  "Category filter"
// @Param        active    query     bool    false  "Only active modules"
// @Success      200       {object}  moduleListResponse
// @Failure      422       {object}  errorResponse
// @Router       /admin/modules [get]
func (h *ModuleHandler) List(c echo.Context) error {
	filter := ports.ModuleFilter{Search: c.QueryParam("search")}
	if raw := c.QueryParam("category"); raw != "" {
		cat := domain.Category(raw)
		if !cat.Valid() {
			return domain.NewValidationError("category", "is not a known category")
		}
		filter.Category = cat
	}
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.NewValidationError("active", "must be a boolean")
		}
		filter.ActiveOnly = active
	}

	var list []domain.AvailableModule
	err := run(c, h.runner, "module_list", func(ctx context.Context) error {
		var err error
		list, err = h.modules.List(ctx, filter)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moduleListResponse{Modules: list, Total: len(list)})
}

// Get handles GET /admin/modules/:id.
//
// @Summary      Get a catalog module
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Module id"
// @Success      200  {object}  domain.AvailableModule
// @Failure      404  {object}  errorResponse
// @Router       /admin/modules/{id} [get]
func (h *ModuleHandler) Get(c echo.Context) error {
	var m *domain.AvailableModule
	err := run(c, h.runner, "module_get", func(ctx context.Context) error {
		var err error
		m, err = h.modules.Get(ctx, c.Param("id"))
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Summary handles GET /admin/modules/summary.
//
// @Summary      Module counters
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ModuleSummary
// @Router       /admin/modules/summary [get]
func (h *ModuleHandler) Summary(c echo.Context) error {
	var sum ports.ModuleSummary
	err := run(c, h.runner, "module_summary", func(ctx context.Context) error {
		var err error
		sum, err = h.modules.Summary(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}

// Categories handles GET /admin/modules/categories.
//
// @Summary      Module counts per category
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.CategoryCount
// @Router       /admin/modules/categories [get]
func (h *ModuleHandler) Categories(c echo.Context) error {
	var cats []ports.CategoryCount
	err := run(c, h.runner, "module_categories", func(ctx context.Context) error {
		var err error
		cats, err = h.modules.Categories(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

// Toggle handles POST /admin/modules/:id/toggle.
//
// @Summary      Activate or deactivate a module
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Module id"
// @Success      200  {object}  toggleResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /admin/modules/{id}/toggle [post]
func (h *ModuleHandler) Toggle(c echo.Context) error {
	var res *ports.ToggleResult
	err := run(c, h.runner, "module_toggle", func(ctx context.Context) error {
		var err error
		res, err = h.modules.Toggle(ctx, c.Param("id"))
		return err
	})
	if err != nil {
		return err
	}
	recordToggle(*res)
	return c.JSON(http.StatusOK, toToggleResponse(*res))
}

// Bulk handles POST /admin/modules/bulk.
//
// @Summary      Set several modules at once
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkModulesRequest  true  "Module ids and target state"
// @Success      200   {array}   toggleResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/modules/bulk [post]
func (h *ModuleHandler) Bulk(c echo.Context) error {
	var req bulkModulesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var results []ports.ToggleResult
	err := run(c, h.runner, "module_bulk", func(ctx context.Context) error {
		var err error
		results, err = h.modules.SetActive(ctx, req.IDs, *req.Active)
		return err
	})
	if err != nil {
		return err
	}

	resp := make([]toggleResponse, 0, len(results))
	for _, res := range results {
		recordToggle(res)
		resp = append(resp, toToggleResponse(res))
	}
	return c.JSON(http.StatusOK, resp)
}

func recordToggle(res ports.ToggleResult) {
	state := "inactive"
	if res.Module.IsActive {
		state = "active"
	}
	metrics.ModuleTogglesTotal.WithLabelValues(res.Module.ID, state).Inc()
}
