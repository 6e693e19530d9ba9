// Package metrics defines and registers all custom Prometheus metrics
// for the domain panel API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "domainpanel"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRefreshesTotal counts refresh-token exchanges.
// Label:
//   - result: "success" or "failure"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh-token exchanges, by result.",
	},
	[]string{"result"},
)

// DirectoryMutationsTotal counts admin directory writes.
// Label:
//   - action: "create", "update" or "delete"
var DirectoryMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_mutations_total",
		Help:      "Total number of admin directory mutations, by action.",
	},
	[]string{"action"},
)

// DomainsRegisteredTotal counts successfully registered domains.
var DomainsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domains_registered_total",
		Help:      "Total number of domains registered.",
	},
)

// DomainStatusUpdatesTotal counts status flips on domain records.
// Label:
//   - status: the new status ("active" or "inactive")
var DomainStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domain_status_updates_total",
		Help:      "Total number of domain status updates, by new status.",
	},
	[]string{"status"},
)
