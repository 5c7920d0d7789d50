package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LendingTransitions counts ledger transitions by event type.
	LendingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "transitions_total",
		Help:      "Lending record transitions by event type.",
	}, []string{"event"})

	// RejectedRequests counts borrow requests refused before a record was
	// created (insufficient stock, invalid input).
	RejectedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "rejected_requests_total",
		Help:      "Borrow requests refused outright.",
	}, []string{"reason"})
)
