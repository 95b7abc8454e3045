// Package metrics defines and registers the Prometheus collectors for the
// employee intake API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors are registered with the default registry on package init via
// promauto; /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "intake"

// Rejection reasons used as the "reason" label of RejectionsTotal.
const (
	ReasonInvalidPayload = "invalid_payload"
	ReasonMissingFields  = "missing_fields"
	ReasonDuplicate      = "duplicate"
	ReasonStoreError     = "store_error"
)

// EmployeesAddedTotal counts records persisted by POST /addEmployee.
var EmployeesAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_added_total",
		Help:      "Total number of employee records inserted.",
	},
)

// RejectionsTotal counts intake requests that did not persist a record.
// Label:
//   - reason: invalid_payload, missing_fields, duplicate, store_error
var RejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejections_total",
		Help:      "Total number of intake requests rejected, by reason.",
	},
	[]string{"reason"},
)

// InsertDuration measures the single store write of an intake request.
// Label:
//   - outcome: "ok", "duplicate" or "error"
var InsertDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "insert_duration_seconds",
		Help:      "Duration of the employee insert, from service call to store response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
