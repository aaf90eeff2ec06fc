// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SettlementsRecorded counts settlements written to the store.
	SettlementsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settleup_settlements_recorded_total",
		Help: "Number of settlement transactions recorded.",
	})

	// PlansComputed counts settlement plan computations.
	PlansComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settleup_settlement_plans_computed_total",
		Help: "Number of debt simplification plans computed.",
	})

	// ValidationRejections counts inputs rejected by validation, by entity.
	ValidationRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settleup_validation_rejections_total",
		Help: "Number of requests rejected by input validation.",
	}, []string{"entity"})
)
