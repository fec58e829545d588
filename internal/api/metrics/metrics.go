// Package metrics defines and registers all custom Prometheus metrics for the
// ticket API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by the service, including the
// HTTP metrics produced by the echoprometheus middleware.
const Namespace = "ticketapp"

// ── Ticket metrics ────────────────────────────────────────────────────────────

// TicketMutationsTotal counts successful ticket writes.
// Label:
//   - op: "create", "update" or "delete"
var TicketMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "ticket_mutations_total",
		Help:      "Total number of ticket mutations persisted, by operation.",
	},
	[]string{"op"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsExpiredTotal counts sessions discarded lazily on read.
var SessionsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of expired sessions removed on read.",
	},
)

// AuthAttemptsTotal counts signup and login attempts.
// Labels:
//   - flow: "signup" or "login"
//   - result: "success", "conflict", "invalid_credentials" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of signup and login attempts, by outcome.",
	},
	[]string{"flow", "result"},
)

// ── Storage metrics ───────────────────────────────────────────────────────────

// StoreCorruptReadsTotal counts persisted values that could not be decoded
// and were treated as empty.
// Label:
//   - collection: "session", "tickets" or "users"
var StoreCorruptReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "store_corrupt_reads_total",
		Help:      "Total number of unreadable persisted values degraded to empty.",
	},
	[]string{"collection"},
)

// KVOperationDuration measures a single key-value backend call.
// Labels:
//   - backend: "memory", "redis" or "mongo"
//   - op: "get", "set" or "remove"
var KVOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "kv_operation_duration_seconds",
		Help:      "Duration of key-value backend operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"backend", "op"},
)
