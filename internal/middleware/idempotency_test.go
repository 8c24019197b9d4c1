package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(t *testing.T, status int) (*gin.Engine, *int) {
	t.Helper()

	idem := NewIdempotency(time.Minute)
	t.Cleanup(idem.Stop)

	calls := 0
	router := gin.New()
	router.Use(idem.Handler())
	handler := func(c *gin.Context) {
		calls++
		c.JSON(status, gin.H{"call": calls})
	}
	router.POST("/api/workflows/:id/submit", handler)
	router.GET("/api/workflows/:id", handler)
	return router, &calls
}

func sendIdempotent(router *gin.Engine, method, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysSuccessfulResponse(t *testing.T) {
	router, calls := newIdempotencyRouter(t, http.StatusOK)

	first := sendIdempotent(router, http.MethodPost, "/api/workflows/wf-1/submit", "key-1", `{}`)
	second := sendIdempotent(router, http.MethodPost, "/api/workflows/wf-1/submit", "key-1", `{}`)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Empty(t, first.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
}

func TestIdempotency_DistinguishesRequests(t *testing.T) {
	tests := []struct {
		name          string
		first, second [4]string
		expectedCalls int
	}{
		{
			name:          "no key",
			first:         [4]string{http.MethodPost, "/api/workflows/wf-1/submit", "", `{}`},
			second:        [4]string{http.MethodPost, "/api/workflows/wf-1/submit", "", `{}`},
			expectedCalls: 2,
		},
		{
			name:          "same key different body",
			first:         [4]string{http.MethodPost, "/api/workflows/wf-1/submit", "k", `{"metadata":{"a":"1"}}`},
			second:        [4]string{http.MethodPost, "/api/workflows/wf-1/submit", "k", `{"metadata":{"a":"2"}}`},
			expectedCalls: 2,
		},
		{
			name:          "same key different path",
			first:         [4]string{http.MethodPost, "/api/workflows/wf-1/submit", "k", `{}`},
			second:        [4]string{http.MethodPost, "/api/workflows/wf-2/submit", "k", `{}`},
			expectedCalls: 2,
		},
		{
			name:          "GET ignored",
			first:         [4]string{http.MethodGet, "/api/workflows/wf-1", "k", ""},
			second:        [4]string{http.MethodGet, "/api/workflows/wf-1", "k", ""},
			expectedCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, calls := newIdempotencyRouter(t, http.StatusOK)

			sendIdempotent(router, tt.first[0], tt.first[1], tt.first[2], tt.first[3])
			w := sendIdempotent(router, tt.second[0], tt.second[1], tt.second[2], tt.second[3])

			assert.Equal(t, tt.expectedCalls, *calls)
			assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
		})
	}
}

func TestIdempotency_DoesNotCacheFailures(t *testing.T) {
	router, calls := newIdempotencyRouter(t, http.StatusServiceUnavailable)

	sendIdempotent(router, http.MethodPost, "/api/workflows/wf-1/submit", "key-1", `{}`)
	w := sendIdempotent(router, http.MethodPost, "/api/workflows/wf-1/submit", "key-1", `{}`)

	assert.Equal(t, 2, *calls)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
