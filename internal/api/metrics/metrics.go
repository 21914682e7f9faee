// Package metrics defines and registers all custom Prometheus metrics for the
// operations console. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on package init and
// are served from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Menu metrics ──────────────────────────────────────────────────────────────

// MenuCommitsTotal counts draft commits.
// Label:
//   - result: "ok" or "error"
var MenuCommitsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_commits_total",
		Help:      "Total number of menu drafts committed, by result.",
	},
	[]string{"result"},
)

// EditRefusalsTotal counts writes refused to protect a draft or a default.
// Label:
//   - reason: "uncommitted_changes", "conflicting_edit", "protected_config" or "no_active_draft"
var EditRefusalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "edit_refusals_total",
		Help:      "Total number of configuration writes refused, by reason.",
	},
	[]string{"reason"},
)

// NavigationResolvesTotal counts navigation resolutions.
// Label:
//   - role: the role resolved for (e.g. "manager")
var NavigationResolvesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigation_resolves_total",
		Help:      "Total number of navigation resolutions, by role.",
	},
	[]string{"role"},
)

// ── Module and flag metrics ───────────────────────────────────────────────────

// ModuleTogglesTotal counts module activation changes.
// Labels:
//   - module_id: catalog id (e.g. "reports")
//   - state: "active" or "inactive" after the toggle
var ModuleTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "module_toggles_total",
		Help:      "Total number of module activation changes.",
	},
	[]string{"module_id", "state"},
)

// FlagUpdatesTotal counts accepted feature flag writes.
// Label:
//   - key: the feature key written (e.g. "exams")
var FlagUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flag_updates_total",
		Help:      "Total number of feature flag values written, by key.",
	},
	[]string{"key"},
)

// ── Action loop metrics ───────────────────────────────────────────────────────

// ActionQueueDepth tracks the number of actions waiting for the loop,
// sampled whenever an action is submitted.
var ActionQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "action_queue_depth",
		Help:      "Number of actions waiting on the action loop.",
	},
)

// ActionDuration measures how long an action takes from submission to result.
// Labels:
//   - action: handler-level action name (e.g. "draft_commit")
//   - outcome: "ok" or "error"
var ActionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "action_duration_seconds",
		Help:      "Duration of actions run on the action loop, including queueing.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"action", "outcome"},
)
