package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		within  time.Duration
	}{
		{name: "configured deadline", timeout: 250 * time.Millisecond, within: 250 * time.Millisecond},
		{name: "zero falls back to default", timeout: 0, within: DefaultRequestTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var remaining time.Duration
			var hasDeadline bool

			router := gin.New()
			router.Use(Timeout(tt.timeout))
			router.GET("/test", func(c *gin.Context) {
				var deadline time.Time
				deadline, hasDeadline = c.Request.Context().Deadline()
				remaining = time.Until(deadline)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, hasDeadline)
			assert.LessOrEqual(t, remaining, tt.within)
			assert.Greater(t, remaining, time.Duration(0))
		})
	}
}

func TestTimeout_ContextExpires(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(10 * time.Millisecond))
	router.GET("/test", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
			c.Status(http.StatusGatewayTimeout)
		case <-time.After(time.Second):
			c.Status(http.StatusOK)
		}
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}
