package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/api/handler"
	"github.com/opsdeck/console/internal/api/middleware"
	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// Deps is everything the HTTP shell needs. The services are owned by the
// action loop; handlers reach them only through Runner.
type Deps struct {
	Identity   ports.IdentityService
	Flags      ports.FlagService
	Modules    ports.ModuleService
	Menus      ports.MenuService
	Editor     ports.EditorService
	Navigation ports.NavigationService

	Runner      handler.Runner
	MenuCount   handler.Counter
	ModuleCount handler.Counter

	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(d.Identity, d.Runner, d.JWTSecret, d.TokenTTL)
	navHandler := handler.NewNavigationHandler(d.Navigation, d.Runner)
	menuHandler := handler.NewMenuHandler(d.Menus, d.Runner)
	draftHandler := handler.NewDraftHandler(d.Editor, d.Runner)
	moduleHandler := handler.NewModuleHandler(d.Modules, d.Runner)
	flagHandler := handler.NewFlagHandler(d.Flags, d.Runner)

	authMiddleware := middleware.Auth(d.JWTSecret, loopSessions{runner: d.Runner, identity: d.Identity})
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Session routes ---
	e.POST("/auth/login", sessionHandler.Login)
	e.POST("/auth/logout", sessionHandler.Logout, authMiddleware)

	e.GET("/me", sessionHandler.Me, authMiddleware)
	e.PUT("/me/role", sessionHandler.SwitchRole, authMiddleware)
	e.GET("/navigation", navHandler.Current, authMiddleware)

	// --- Administration ---
	admin := e.Group("/admin", authMiddleware, adminOnly)
	admin.GET("/navigation/:role", navHandler.Preview)

	admin.GET("/menus", menuHandler.List)
	admin.POST("/menus", menuHandler.Create)
	admin.GET("/menus/:id", menuHandler.Get)
	admin.PUT("/menus/:id", menuHandler.Put)
	admin.DELETE("/menus/:id", menuHandler.Delete)
	admin.POST("/menus/:id/duplicate", menuHandler.Duplicate)
	admin.PUT("/menus/:id/role", menuHandler.AssignRole)

	admin.POST("/draft", draftHandler.Begin)
	admin.GET("/draft", draftHandler.Get)
	admin.DELETE("/draft", draftHandler.Discard)
	admin.POST("/draft/reorder", draftHandler.Reorder)
	admin.POST("/draft/items", draftHandler.AddItem)
	admin.PATCH("/draft/items/:item_id", draftHandler.EditItem)
	admin.DELETE("/draft/items/:item_id", draftHandler.RemoveItem)
	admin.PUT("/draft/items/:item_id/visible", draftHandler.SetVisible)
	admin.PUT("/draft/items/:item_id/disabled", draftHandler.SetDisabled)
	admin.POST("/draft/commit", draftHandler.Commit)

	admin.GET("/modules", moduleHandler.List)
	admin.GET("/modules/summary", moduleHandler.Summary)
	admin.GET("/modules/categories", moduleHandler.Categories)
	admin.POST("/modules/bulk", moduleHandler.Bulk)
	admin.GET("/modules/:id", moduleHandler.Get)
	admin.POST("/modules/:id/toggle", moduleHandler.Toggle)

	admin.GET("/flags", flagHandler.Get)
	admin.PATCH("/flags", flagHandler.Update)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.MenuCount, d.ModuleCount, d.Runner)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: is the seed loaded and does the loop answer?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// loopSessions reads the identity from inside the action loop.
type loopSessions struct {
	runner   handler.Runner
	identity ports.IdentityService
}

func (s loopSessions) Session(ctx context.Context) (domain.User, bool, error) {
	var (
		user domain.User
		ok   bool
	)
	err := s.runner.Do(ctx, func(context.Context) error {
		user, ok = s.identity.Current()
		return nil
	})
	return user, ok, err
}
