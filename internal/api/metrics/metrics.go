// Package metrics defines all custom Prometheus metrics for the Torch site
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via promauto
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "torch"

// ── Analytics metrics ─────────────────────────────────────────────────────────

// AnalyticsRecordedTotal counts events stored durably in the database.
// Label:
//   - type: the event type (e.g. "PAGE_VIEW")
var AnalyticsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_recorded_total",
		Help:      "Total number of analytics events stored in the database.",
	},
	[]string{"type"},
)

// AnalyticsFallbackTotal counts events that landed in the per-day fallback
// file because the database write failed.
var AnalyticsFallbackTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_fallback_total",
		Help:      "Total number of analytics events written to the file fallback.",
	},
)

// AnalyticsDroppedTotal counts events lost because both the database and the
// fallback file write failed.
var AnalyticsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_dropped_total",
		Help:      "Total number of analytics events dropped after both stores failed.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "unavailable"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// SessionReadsTotal counts session cookie verifications by outcome.
// Label:
//   - result: "verified", "none" (no cookie), or "rejected" (bad/expired token)
var SessionReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_reads_total",
		Help:      "Total number of session cookie reads, by result.",
	},
	[]string{"result"},
)
