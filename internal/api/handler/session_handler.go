package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/api/middleware"
	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// SessionHandler handles sign-in, sign-out and role switching.
type SessionHandler struct {
	identity  ports.IdentityService
	runner    Runner
	jwtSecret string
	tokenTTL  time.Duration
}

func NewSessionHandler(identity ports.IdentityService, runner Runner, jwtSecret string, tokenTTL time.Duration) *SessionHandler {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &SessionHandler{identity: identity, runner: runner, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login authenticates the operator and returns a session token.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var user domain.User
	err := run(c, h.runner, "login", func(ctx context.Context) error {
		u, err := h.identity.Login(ctx, ports.Credentials{
			Email:    req.Email,
			Password: req.Password,
			Company:  req.Company,
		})
		user = u
		return err
	})
	if err != nil {
		return err
	}

	token, err := middleware.IssueToken(h.jwtSecret, user.ID, h.tokenTTL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: user})
}

// Logout ends the session; outstanding tokens stop working.
//
// @Summary      Logout
// @Tags         session
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	err := run(c, h.runner, "logout", func(context.Context) error {
		h.identity.Logout()
		return nil
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed-in user.
//
// @Summary      Current user
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SwitchRole changes the current role. A role the user does not hold is
// ignored and reported with changed=false.
//
// @Summary      Switch role
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      switchRoleRequest  true  "Target role"
// @Success      200   {object}  switchRoleResponse
// @Failure      422   {object}  errorResponse
// @Router       /me/role [put]
func (h *SessionHandler) SwitchRole(c echo.Context) error {
	var req switchRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	var resp switchRoleResponse
	err = run(c, h.runner, "switch_role", func(context.Context) error {
		user, changed, err := h.identity.SwitchRole(role)
		resp = switchRoleResponse{User: user, Changed: changed}
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
