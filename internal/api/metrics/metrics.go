// Package metrics defines and registers all custom Prometheus metrics
// for the gardening API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gardening"

// Auth metrics.

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "email_taken" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens handed out at login and registration.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// TokenRejectionsTotal counts bearer tokens that failed validation.
// The filter still lets the request continue anonymously.
var TokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of presented bearer tokens that failed validation.",
	},
)

// AuthzDecisionsTotal counts rule table outcomes.
// Label:
//   - outcome: "allowed", "unauthenticated" or "forbidden"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization decisions, by outcome.",
	},
	[]string{"outcome"},
)

// Catalog metrics.

// CatalogWritesTotal counts create/update/delete operations on catalog
// resources.
// Labels:
//   - resource: "crop", "recipe", "ingredient", "category", "course", "measurement", "user"
//   - operation: "create", "update" or "delete"
var CatalogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_writes_total",
		Help:      "Total number of catalog write operations, by resource and operation.",
	},
	[]string{"resource", "operation"},
)
