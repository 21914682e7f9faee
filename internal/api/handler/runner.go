package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/api/metrics"
	"github.com/opsdeck/console/internal/infrastructure/queue"
)

// Runner executes actions one at a time on the action loop. Every handler
// touches the core only from inside an action.
type Runner interface {
	Do(ctx context.Context, fn queue.Action) error
	Depth() int
}

// run submits fn under the action name used for metrics.
func run(c echo.Context, r Runner, action string, fn queue.Action) error {
	metrics.ActionQueueDepth.Set(float64(r.Depth()))

	start := time.Now()
	err := r.Do(c.Request().Context(), fn)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.ActionDuration.WithLabelValues(action, outcome).Observe(time.Since(start).Seconds())
	return err
}
