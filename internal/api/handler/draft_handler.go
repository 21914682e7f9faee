package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/api/metrics"
	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// DraftHandler drives the menu draft editor.
type DraftHandler struct {
	editor ports.EditorService
	runner Runner
}

func NewDraftHandler(editor ports.EditorService, runner Runner) *DraftHandler {
	return &DraftHandler{editor: editor, runner: runner}
}

// Begin handles POST /admin/draft.
//
// @Summary      Open a configuration for editing
// @Tags         draft
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      beginEditRequest  true  "Configuration id"
// @Success      200   {object}  draftResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/draft [post]
func (h *DraftHandler) Begin(c echo.Context) error {
	var req beginEditRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var resp draftResponse
	err := run(c, h.runner, "draft_begin", func(ctx context.Context) error {
		if _, err := h.editor.BeginEdit(ctx, req.ConfigID); err != nil {
			return err
		}
		return h.fill(&resp)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /admin/draft.
//
// @Summary      Current draft
// @Tags         draft
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  draftResponse
// @Failure      409  {object}  errorResponse
// @Router       /admin/draft [get]
func (h *DraftHandler) Get(c echo.Context) error {
	return h.mutate(c, "draft_get", func() error { return nil })
}

// Reorder handles POST /admin/draft/reorder.
//
// @Summary      Move an item
// @Tags         draft
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reorderRequest  true  "Source and target positions"
// @Success      200   {object}  draftResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/draft/reorder [post]
func (h *DraftHandler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.mutate(c, "draft_reorder", func() error {
		_, err := h.editor.Reorder(*req.From, *req.To)
		return err
	})
}

// SetVisible handles PUT /admin/draft/items/:item_id/visible.
//
// @Summary      Show or hide an item
// @Tags         draft
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_id  path      string            true  "Item id"
// @Param        body     body      flagValueRequest  true  "Visibility"
// @Success      200      {object}  draftResponse
// @Failure      404      {object}  errorResponse
// @Router       /admin/draft/items/{item_id}/visible [put]
func (h *DraftHandler) SetVisible(c echo.Context) error {
	var req flagValueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	itemID := c.Param("item_id")
	return h.mutate(c, "draft_set_visible", func() error {
		_, err := h.editor.SetVisible(itemID, *req.Value)
		return err
	})
}

// SetDisabled handles PUT /admin/draft/items/:item_id/disabled.
//
// @Summary      Enable or disable an item
// @Tags         draft
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_id  path      string            true  "Item id"
// @Param        body     body      flagValueRequest  true  "Disabled state"
// @Success      200      {object}  draftResponse
// @Failure      404      {object}  errorResponse
// @Router       /admin/draft/items/{item_id}/disabled [put]
func (h *DraftHandler) SetDisabled(c echo.Context) error {
	var req flagValueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	itemID := c.Param("item_id")
	return h.mutate(c, "draft_set_disabled", func() error {
		_, err := h.editor.SetDisabled(itemID, *req.Value)
		return err
	})
}

// AddItem handles POST /admin/draft/items.
//
// @Summary      Add an item
// @Tags         draft
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addItemRequest  true  "Label, icon and path"
// @Success      201   {object}  domain.MenuItem
// @Failure      422   {object}  errorResponse
// @Router       /admin/draft/items [post]
func (h *DraftHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var item *domain.MenuItem
	err := run(c, h.runner, "draft_add_item", func(context.Context) error {
		var err error
		item, err = h.editor.AddItem(ports.ItemInput{Label: req.Label, Icon: req.Icon, Path: req.Path})
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// EditItem handles PATCH /admin/draft/items/:item_id.
//
// @Summary      Edit an item's label, icon or path
// @Tags         draft
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_id  path      string           true  "Item id"
// @Param        body     body      editItemRequest  true  "Fields to change"
// @Success      200      {object}  draftResponse
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /admin/draft/items/{item_id} [patch]
func (h *DraftHandler) EditItem(c echo.Context) error {
	var req editItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	itemID := c.Param("item_id")
	return h.mutate(c, "draft_edit_item", func() error {
		_, err := h.editor.EditItem(itemID, toItemPatch(req))
		return err
	})
}

// RemoveItem handles DELETE /admin/draft/items/:item_id.
//
// @Summary      Remove an item
// @Tags         draft
// @Produce      json
// @Security     BearerAuth
// @Param        item_id  path      string  true  "Item id"
// @Success      200      {object}  draftResponse
// @Failure      404      {object}  errorResponse
// @Router       /admin/draft/items/{item_id} [delete]
func (h *DraftHandler) RemoveItem(c echo.Context) error {
	itemID := c.Param("item_id")
	return h.mutate(c, "draft_remove_item", func() error {
		return h.editor.RemoveItem(itemID)
	})
}

// Commit handles POST /admin/draft/commit.
//
// @Summary      Commit the draft
// @Tags         draft
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.MenuConfiguration
// @Failure      409  {object}  errorResponse
// @Router       /admin/draft/commit [post]
func (h *DraftHandler) Commit(c echo.Context) error {
	var cfg *domain.MenuConfiguration
	err := run(c, h.runner, "draft_commit", func(ctx context.Context) error {
		var err error
		cfg, err = h.editor.Commit(ctx)
		return err
	})
	if err != nil {
		metrics.MenuCommitsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.MenuCommitsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, cfg)
}

// Discard handles DELETE /admin/draft.
//
// @Summary      Discard the draft
// @Tags         draft
// @Security     BearerAuth
// @Success      204
// @Router       /admin/draft [delete]
func (h *DraftHandler) Discard(c echo.Context) error {
	err := run(c, h.runner, "draft_discard", func(context.Context) error {
		h.editor.Discard()
		return nil
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// mutate runs edit and answers with the resulting draft.
func (h *DraftHandler) mutate(c echo.Context, action string, edit func() error) error {
	var resp draftResponse
	err := run(c, h.runner, action, func(context.Context) error {
		if err := edit(); err != nil {
			return err
		}
		return h.fill(&resp)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DraftHandler) fill(resp *draftResponse) error {
	cfg, dirty, err := h.editor.Draft()
	if err != nil {
		return err
	}
	resp.Configuration = cfg
	resp.Dirty = dirty
	return nil
}
