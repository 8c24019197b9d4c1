package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/domain/model"
)

// AuditLog records an operator action through the global async logger. It is
// a no-op when audit persistence is disabled.
func AuditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	writeAudit(c, "info", actionType, message, nil, fields)
}

// AuditLogError records a failed operator action.
func AuditLogError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	writeAudit(c, "error", actionType, message, err, fields)
}

func writeAudit(c *gin.Context, level, actionType, message string, err error, fields map[string]interface{}) {
	asyncLogger := GetAsyncLogger()
	if asyncLogger == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Operator:   GetClaims(c).Operator(),
		ActionType: actionType,
		Fields:     fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	asyncLogger.Log(entry)
}
