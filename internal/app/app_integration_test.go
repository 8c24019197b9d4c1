//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/service"
)

func mongoConfig(t *testing.T) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Workflow: config.WorkflowConfig{Capacity: 100, TTL: time.Hour},
		Database: config.DatabaseConfig{
			URI:                            getSharedContainerURI(),
			DatabaseName:                   sanitizeDBNameForApp(t.Name()),
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
}

func TestInitializeApp_Integration(t *testing.T) {
	t.Run("initialize app with MongoDB enabled", func(t *testing.T) {
		a, err := InitializeApp(mongoConfig(t))
		require.NoError(t, err)
		t.Cleanup(func() { _ = a.Close(context.Background()) })

		require.NotNil(t, a.Database)
		assert.IsType(t, &service.RepositoryCounterSource{}, a.Core.Counters)

		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
		assert.Contains(t, w.Body.String(), `"mongodb_counters_circuit":"closed"`)
	})

	t.Run("counters survive an application restart", func(t *testing.T) {
		cfg := mongoConfig(t)

		first, err := InitializeApp(cfg)
		require.NoError(t, err)
		start, err := first.Core.Counters.NextCounter(context.Background(), "GRN-1|RM-1", 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), start)
		require.NoError(t, first.Close(context.Background()))

		second, err := InitializeApp(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = second.Close(context.Background()) })

		start, err = second.Core.Counters.NextCounter(context.Background(), "GRN-1|RM-1", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(4), start)
	})
}
