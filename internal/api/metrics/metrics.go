// Package metrics defines all custom Prometheus metrics for the NaviHub API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Collectors register themselves with the default registry via promauto, so
// importing the package is enough; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "navihub"

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// LinkMutationsTotal counts successful link mutations.
// Label:
//   - operation: "create", "update" or "delete"
var LinkMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "link_mutations_total",
		Help:      "Total number of successful link mutations, by operation.",
	},
	[]string{"operation"},
)

// UserMutationsTotal counts successful user-account mutations.
// Label:
//   - operation: "create", "update" or "delete"
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of successful user-account mutations, by operation.",
	},
	[]string{"operation"},
)
