// Package metrics defines and registers all custom Prometheus metrics for the
// cart backend. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at package init via promauto; HTTP
// request metrics come from the echoprometheus middleware, not from here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cart"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts. Unknown emails and wrong passwords both
// land in the failure label.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// VerificationsTotal counts session token verifications.
// Label:
//   - result: "success", "missing", "invalid", or "revoked"
var VerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, labelled by result.",
	},
	[]string{"result"},
)

// ── Cart and order metrics ────────────────────────────────────────────────────

// CartItemsAddedTotal counts items added to the cart.
var CartItemsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_added_total",
		Help:      "Total number of items added to the cart.",
	},
)

// CartItemsDeletedTotal counts items actually removed from the cart, whether
// individually or through a batch clear.
var CartItemsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_deleted_total",
		Help:      "Total number of items removed from the cart.",
	},
)

// OrdersSavedTotal counts persisted orders.
var OrdersSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_saved_total",
		Help:      "Total number of orders persisted.",
	},
)
