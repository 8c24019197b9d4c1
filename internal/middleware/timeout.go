package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultRequestTimeout bounds request processing when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// Timeout attaches a deadline to the request context. Counter reservations and
// print batch writes observe it, and the service maps an expired deadline to
// 504 through the error mapping.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
