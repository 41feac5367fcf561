package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values beyond service.Outcome's.
const (
	outcomeNotFound = "not_found"
	outcomeFailed   = "failed"
)

var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "todos_operations_total",
	Help: "Units of work by operation and outcome",
}, []string{"operation", "outcome"})
