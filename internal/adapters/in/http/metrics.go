package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Trade lifecycle counters exposed on /metrics.
var (
	batchesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_batches_created_total",
		Help: "Number of batches originated.",
	})

	batchesFlagged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_batches_flagged_total",
		Help: "Number of tamper flags raised against batches.",
	})

	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_orders_placed_total",
		Help: "Number of orders placed with escrow captured.",
	})

	ordersConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_orders_confirmed_total",
		Help: "Number of orders confirmed with escrow released to the seller.",
	})

	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_orders_cancelled_total",
		Help: "Number of orders cancelled with escrow refunded to the buyer.",
	})
)
