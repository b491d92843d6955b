package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders taken in",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pedidos_service",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Total number of applied status transitions by target status",
		},
		[]string{"to"},
	)

	ordersBatchCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos_service",
			Subsystem: "orders",
			Name:      "batch_cancelled_total",
			Help:      "Total number of orders cancelled through batch cancellation",
		},
	)

	ordersDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos_service",
			Subsystem: "orders",
			Name:      "deleted_total",
			Help:      "Total number of finished orders deleted",
		},
	)

	resets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos_service",
			Subsystem: "orders",
			Name:      "resets_total",
			Help:      "Total number of full order resets",
		},
	)

	bagsRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos_service",
			Subsystem: "bags",
			Name:      "registered_total",
			Help:      "Total number of bags registered",
		},
	)

	loginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos_service",
			Subsystem: "auth",
			Name:      "login_failures_total",
			Help:      "Total number of rejected login attempts",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		statusTransitions,
		ordersBatchCancelled,
		ordersDeleted,
		resets,
		bagsRegistered,
		loginFailures,
	)
}
