package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health: liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Counter reports how many records a repository holds.
type Counter interface {
	Len() int
}

// HealthDependenciesHandler handles GET /health/ready: readiness probe.
// Checks that the seed data is loaded and the action loop answers.
type HealthDependenciesHandler struct {
	menus   Counter
	modules Counter
	runner  Runner
}

func NewHealthDependenciesHandler(menus, modules Counter, runner Runner) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{menus: menus, modules: modules, runner: runner}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Count  int    `json:"count,omitempty"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Action loop round trip ---
	if err := h.runner.Do(ctx, func(context.Context) error { return nil }); err != nil {
		deps["action_loop"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["action_loop"] = dependencyStatus{Status: "ok", Count: h.runner.Depth()}
	}

	// --- Seeded repositories ---
	for name, repo := range map[string]Counter{"menus": h.menus, "modules": h.modules} {
		n := repo.Len()
		if n == 0 {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: "empty"}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok", Count: n}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
