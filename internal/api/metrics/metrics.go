// Package metrics defines and registers all custom Prometheus metrics
// for the residential API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "residential"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success", "invalid_credentials", or "inactive_account"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRefreshTotal counts refresh-token exchanges.
// Label:
//   - result: "success" or "rejected"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of refresh-token exchanges, by result.",
	},
	[]string{"result"},
)

// AccountsProvisionedTotal counts created accounts.
// Label:
//   - kind: "user" or "superuser"
var AccountsProvisionedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_provisioned_total",
		Help:      "Total number of accounts provisioned, by kind.",
	},
	[]string{"kind"},
)

// EntityWritesTotal counts create/update/delete operations per entity.
// Labels:
//   - entity: "role", "property", "unit", "vehicle", "common_area",
//     "reservation", "maintenance_request", "notice", "security_record"
//   - op: "create", "update", or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of entity write operations, by entity and operation.",
	},
	[]string{"entity", "op"},
)
