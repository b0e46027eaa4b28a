// Package metrics defines all custom Prometheus metrics for the commerce
// services. It is the single source of truth for metric names, labels, and
// help strings; registration happens via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// CacheReadsTotal counts cache-aside read outcomes.
// Labels:
//   - keyspace: the key class ("products", "orders")
//   - result: "hit", "miss", "error" (tier unavailable), or "corrupt"
var CacheReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_reads_total",
		Help:      "Total cache-aside reads, labelled by keyspace and result.",
	},
	[]string{"keyspace", "result"},
)

// CacheInvalidationsTotal counts write-path invalidations.
// Labels:
//   - keyspace: the key class
//   - result: "ok" or "error" (best-effort failure, swallowed)
var CacheInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidations_total",
		Help:      "Total cache invalidations issued by mutations.",
	},
	[]string{"keyspace", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts minted tokens.
// Label:
//   - kind: "login" or "refresh"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total identity tokens issued.",
	},
	[]string{"kind"},
)

// ProductsCreatedTotal counts products added through the admin endpoint.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total products created.",
	},
)

// OrdersCreatedTotal counts successfully persisted orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total orders created.",
	},
)

// UpstreamRequestsTotal counts catalog lookups made by the order service.
// Label:
//   - result: "ok", "not_found", "unavailable"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total product lookups against the catalog service.",
	},
	[]string{"result"},
)
