package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values shared by the payment counters.
const (
	OutcomeOK          = "ok"
	OutcomeCallerError = "caller_error"
	OutcomeUpstream    = "upstream_error"
	OutcomeDataMissing = "data_missing"
)

// Result label values for presence ticks.
const (
	TickOnline  = "online"
	TickOffline = "offline"
	TickSkipped = "skipped"
	TickError   = "error"
)

var (
	OrdersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kiosk",
		Name:      "payment_orders_total",
		Help:      "Order creation attempts by outcome.",
	}, []string{"outcome"})

	StatusChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kiosk",
		Name:      "status_checks_total",
		Help:      "Transaction status lookups by outcome.",
	}, []string{"outcome"})

	PresenceTicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kiosk",
		Name:      "presence_ticks_total",
		Help:      "Presence sampler ticks by device and result.",
	}, []string{"device_id", "result"})
)
