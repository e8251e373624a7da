package settlement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	royaltyCalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "royalty_calculations_total",
		Help: "Total number of reservation royalty calculations",
	}, []string{"payment_type", "refund"})

	reportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "settlement_report_duration_seconds",
		Help:    "Time to build a settlement report including data loading",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	})

	skippedReservationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_skipped_reservations_total",
		Help: "Reservations left out of settlement reports",
	}, []string{"reason"})
)

const (
	skipReasonIncomplete = "incomplete"
	skipReasonInvalid    = "invalid"
)
