package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/api/metrics"
	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// NavigationHandler serves the resolved navigation.
type NavigationHandler struct {
	nav    ports.NavigationService
	runner Runner
}

func NewNavigationHandler(nav ports.NavigationService, runner Runner) *NavigationHandler {
	return &NavigationHandler{nav: nav, runner: runner}
}

// Current handles GET /navigation for the signed-in user's current role.
//
// @Summary      Navigation for the current role
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Failure      401  {object}  errorResponse
// @Router       /navigation [get]
func (h *NavigationHandler) Current(c echo.Context) error {
	var entries []ports.NavEntry
	err := run(c, h.runner, "navigation", func(ctx context.Context) error {
		var err error
		entries, err = h.nav.Current(ctx)
		return err
	})
	if err != nil {
		return err
	}

	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	metrics.NavigationResolvesTotal.WithLabelValues(string(user.CurrentRole)).Inc()
	return c.JSON(http.StatusOK, navigationResponse{Role: user.CurrentRole, Entries: entries})
}

// Preview handles GET /admin/navigation/:role.
//
// @Summary      Preview another role's navigation
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "Role (admin, manager, employee)"
// @Success      200   {object}  navigationResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/navigation/{role} [get]
func (h *NavigationHandler) Preview(c echo.Context) error {
	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		return err
	}

	var entries []ports.NavEntry
	err = run(c, h.runner, "navigation_preview", func(ctx context.Context) error {
		var err error
		entries, err = h.nav.ResolveFor(ctx, role)
		return err
	})
	if err != nil {
		return err
	}

	metrics.NavigationResolvesTotal.WithLabelValues(string(role)).Inc()
	return c.JSON(http.StatusOK, navigationResponse{Role: role, Entries: entries})
}
