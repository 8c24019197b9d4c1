package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 10000, cfg.Workflow.Capacity)
		assert.Equal(t, 2*time.Hour, cfg.Workflow.TTL)
		assert.Equal(t, "remainder_on_last", cfg.Workflow.DefaultStrategy)
		assert.Equal(t, 10000, cfg.Workflow.MaxLabelCount)
		assert.False(t, cfg.Auth.Enabled)
		assert.Empty(t, cfg.Auth.JWTSecretKey)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "label_service", cfg.Database.DatabaseName)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("REQUEST_TIMEOUT", "5s")
		_ = os.Setenv("WORKFLOW_CAPACITY", "500")
		_ = os.Setenv("WORKFLOW_TTL", "10m")
		_ = os.Setenv("DEFAULT_STRATEGY", "spread")
		_ = os.Setenv("MAX_LABEL_COUNT", "250")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("JWT_SECRET_KEY", "s3cret")
		_ = os.Setenv("SUBMIT_ROLES", "supervisor,admin")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("CIRCUIT_BREAKER_TIMEOUT", "1m")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 500, cfg.Workflow.Capacity)
		assert.Equal(t, 10*time.Minute, cfg.Workflow.TTL)
		assert.Equal(t, "spread", cfg.Workflow.DefaultStrategy)
		assert.Equal(t, 250, cfg.Workflow.MaxLabelCount)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
		assert.Equal(t, "s3cret", cfg.Auth.JWTSecretKey)
		assert.Equal(t, []string{"supervisor", "admin"}, cfg.Auth.SubmitRoles)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Database.CircuitBreakerTimeout)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("WORKFLOW_TTL", "soon")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 2*time.Hour, cfg.Workflow.TTL)
	})

	t.Run("parses API keys with whitespace and duplicates", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 ,, key1, key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"key1", "key2", "key3"}, cfg.Auth.APIKeys)
	})

	t.Run("returns nil for empty lists", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("SUBMIT_ROLES", " , ")
		defer os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
		assert.Nil(t, cfg.Auth.SubmitRoles)
	})

	t.Run("appends CORS origins to the local defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://labels.example.com, ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://labels.example.com",
		}, cfg.Server.CORSOrigins)
	})
}
