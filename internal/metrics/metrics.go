// Package metrics exposes Prometheus collectors for the label service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "labelsvc"

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal counts HTTP requests by method, route and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// AllocationsTotal counts engine runs by strategy and outcome.
	AllocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Total number of label allocation runs",
		},
		[]string{"strategy", "status"},
	)

	// AllocationDuration tracks engine run duration.
	AllocationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "allocation_duration_seconds",
			Help:      "Label allocation duration in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// LabelsGenerated counts labels produced by successful allocations.
	LabelsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "labels_generated_total",
			Help:      "Total number of labels generated",
		},
	)

	// WorkflowEventsTotal counts workflow commands by event and result.
	WorkflowEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_events_total",
			Help:      "Total number of print workflow commands",
		},
		[]string{"event", "result"},
	)

	// CounterReservationsTotal counts serial counter reservations by result.
	CounterReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "counter_reservations_total",
			Help:      "Total number of serial counter reservations",
		},
		[]string{"result"},
	)

	// WorkflowStoreOperationsTotal counts workflow store operations.
	WorkflowStoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_store_operations_total",
			Help:      "Total number of workflow store operations",
		},
		[]string{"operation", "result"},
	)

	// WorkflowsActive tracks workflows currently held in memory.
	WorkflowsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workflows_active",
			Help:      "Number of print workflows held in memory",
		},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordAllocation records one engine run. labels is zero for failed runs.
func RecordAllocation(strategy string, duration time.Duration, labels int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	AllocationDuration.Observe(duration.Seconds())
	AllocationsTotal.WithLabelValues(strategy, status).Inc()
	if labels > 0 {
		LabelsGenerated.Add(float64(labels))
	}
}

// RecordWorkflowEvent records the outcome of a workflow command.
func RecordWorkflowEvent(event, result string) {
	WorkflowEventsTotal.WithLabelValues(event, result).Inc()
}

// RecordCounterReservation records a counter reservation outcome.
func RecordCounterReservation(result string) {
	CounterReservationsTotal.WithLabelValues(result).Inc()
}

// RecordWorkflowStoreOperation records a workflow store operation.
func RecordWorkflowStoreOperation(operation, result string) {
	WorkflowStoreOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateWorkflowsActive sets the number of workflows held in memory.
func UpdateWorkflowsActive(n int) {
	WorkflowsActive.Set(float64(n))
}

// SetCircuitBreakerState records the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
