package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/api/middleware"
	"github.com/opsdeck/console/internal/core/domain"
)

// ctxUser returns the user injected by the Auth middleware. Its absence
// means the route was registered without Auth.
func ctxUser(c echo.Context) (domain.User, error) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// bindAndValidate decodes the body into req and checks its tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
