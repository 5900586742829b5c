// Package metrics defines all custom Prometheus metrics for the guidance API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "guidance"

// RegistrationsTotal counts account registrations by outcome.
// Label:
//   - outcome: "created", "duplicate", or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "ok", "bad_credentials", "not_found", or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// PathEntriesAddedTotal counts learning-path entries prepended by profile updates.
var PathEntriesAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "path_entries_added_total",
		Help:      "Total number of learning-path entries added.",
	},
)

// RatingsTotal counts resource rating upserts.
var RatingsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_total",
		Help:      "Total number of resource ratings stored.",
	},
)

// RecommendationCacheTotal counts recommendation cache lookups.
// Label:
//   - result: "hit" or "miss"
var RecommendationCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendation_cache_total",
		Help:      "Total number of recommendation cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ChatRepliesTotal counts chatbot replies by matched intent.
// Label:
//   - intent: rule name ("python", "dsa", ...) or "fallback"
var ChatRepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_replies_total",
		Help:      "Total number of chatbot replies, by matched intent.",
	},
	[]string{"intent"},
)
