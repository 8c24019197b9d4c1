package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		attachError   error
		expectedLevel string
	}{
		{name: "success", status: http.StatusOK, expectedLevel: "info"},
		{name: "client error", status: http.StatusUnprocessableEntity, expectedLevel: "warn"},
		{name: "server error with gin error", status: http.StatusServiceUnavailable, attachError: errors.New("counter source down"), expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collect := captureEntries(t)

			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/api/workflows/:id", func(c *gin.Context) {
				if tt.attachError != nil {
					_ = c.Error(tt.attachError)
				}
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/workflows/wf-1", nil))
			assert.Equal(t, tt.status, w.Code)

			entries := collect()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.status, entry.StatusCode)
			assert.Equal(t, http.MethodGet, entry.Method)
			assert.Equal(t, "/api/workflows/wf-1", entry.Path)
			assert.NotEmpty(t, entry.RequestID)
			if tt.attachError != nil {
				assert.Equal(t, tt.attachError.Error(), entry.Error)
			}
		})
	}
}

func TestRequestLogger_WithoutAsyncLogger(t *testing.T) {
	StopAsyncLogger()

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, "info", getLogLevel(http.StatusOK))
	assert.Equal(t, "info", getLogLevel(http.StatusNotModified))
	assert.Equal(t, "warn", getLogLevel(http.StatusBadRequest))
	assert.Equal(t, "warn", getLogLevel(http.StatusConflict))
	assert.Equal(t, "error", getLogLevel(http.StatusInternalServerError))
	assert.Equal(t, "error", getLogLevel(http.StatusGatewayTimeout))
}
