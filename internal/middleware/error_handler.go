package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and writes a generic
// 500 envelope when no handler produced a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		status := c.Writer.Status()
		log := logger.Logger()
		event := log.Warn()
		if status >= http.StatusInternalServerError || !c.Writer.Written() {
			event = log.Error()
		}
		event.
			Str("request_id", GetRequestID(c)).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", status).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			errorResp := dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(GetRequestID(c))
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
