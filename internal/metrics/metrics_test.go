package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/workflows/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, "/api/workflows/:id", "200"))

	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/workflows/"+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, "/api/workflows/:id", "200"))
	assert.Equal(t, before+2, after, "requests are grouped by route template")
}

func TestPrometheusMiddleware_Unmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(PrometheusMiddleware())

	before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordAllocation(t *testing.T) {
	okBefore := testutil.ToFloat64(AllocationsTotal.WithLabelValues("remainder_on_last", "success"))
	errBefore := testutil.ToFloat64(AllocationsTotal.WithLabelValues("remainder_on_last", "error"))
	labelsBefore := testutil.ToFloat64(LabelsGenerated)

	RecordAllocation("remainder_on_last", time.Millisecond, 3, nil)
	RecordAllocation("remainder_on_last", time.Millisecond, 0, errors.New("bad request"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(AllocationsTotal.WithLabelValues("remainder_on_last", "success")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(AllocationsTotal.WithLabelValues("remainder_on_last", "error")))
	assert.Equal(t, labelsBefore+3, testutil.ToFloat64(LabelsGenerated))
}

func TestRecordWorkflowEvent(t *testing.T) {
	before := testutil.ToFloat64(WorkflowEventsTotal.WithLabelValues("submit", "success"))
	RecordWorkflowEvent("submit", "success")
	assert.Equal(t, before+1, testutil.ToFloat64(WorkflowEventsTotal.WithLabelValues("submit", "success")))
}

func TestGauges(t *testing.T) {
	UpdateWorkflowsActive(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(WorkflowsActive))

	SetCircuitBreakerState("counters", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("counters")))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(CounterReservationsTotal.WithLabelValues("success"))
	RecordCounterReservation("success")
	assert.Equal(t, before+1, testutil.ToFloat64(CounterReservationsTotal.WithLabelValues("success")))

	storeBefore := testutil.ToFloat64(WorkflowStoreOperationsTotal.WithLabelValues("get", "hit"))
	RecordWorkflowStoreOperation("get", "hit")
	assert.Equal(t, storeBefore+1, testutil.ToFloat64(WorkflowStoreOperationsTotal.WithLabelValues("get", "hit")))
}
