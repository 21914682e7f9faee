package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/api/metrics"
	"github.com/opsdeck/console/internal/core/ports"
)

// FlagHandler reads and writes the feature flag registry.
type FlagHandler struct {
	flags  ports.FlagService
	runner Runner
}

func NewFlagHandler(flags ports.FlagService, runner Runner) *FlagHandler {
	return &FlagHandler{flags: flags, runner: runner}
}

// Get handles GET /admin/flags.
//
// @Summary      Feature flags
// @Tags         flags
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  flagsResponse
// @Router       /admin/flags [get]
func (h *FlagHandler) Get(c echo.Context) error {
	var resp flagsResponse
	err := run(c, h.runner, "flags_get", func(context.Context) error {
		resp = toFlagsResponse(h.flags.Keys(), h.flags.Get())
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PATCH /admin/flags with a partial {key: enabled} map.
//
// @Summary      Update feature flags
// @Tags         flags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]bool  true  "Flags to change"
// @Success      200   {object}  flagsResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/flags [patch]
func (h *FlagHandler) Update(c echo.Context) error {
	partial := map[string]bool{}
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var resp flagsResponse
	err := run(c, h.runner, "flags_update", func(context.Context) error {
		flags, err := h.flags.Update(partial)
		if err != nil {
			return err
		}
		resp = toFlagsResponse(h.flags.Keys(), flags)
		return nil
	})
	if err != nil {
		return err
	}

	for key := range partial {
		metrics.FlagUpdatesTotal.WithLabelValues(key).Inc()
	}
	return c.JSON(http.StatusOK, resp)
}
