package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/logger"
)

// RequestLogger logs every request with zerolog and, when audit persistence is
// enabled, stores it through the async logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		requestID := GetRequestID(c)
		operator := GetClaims(c).Operator()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("operator", operator).
			Logger()

		switch getLogLevel(statusCode) {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		asyncLogger := GetAsyncLogger()
		if asyncLogger == nil {
			return
		}
		entry := &model.LogEntry{
			Timestamp:  time.Now().UTC(),
			Level:      getLogLevel(statusCode),
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Operator:   operator,
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}
		asyncLogger.Log(entry)
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
