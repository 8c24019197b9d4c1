package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
)

// RequireRole returns a middleware that lets a request through only when the
// verified operator holds at least one of roles. It must run after JWTAuth.
// With no roles every authenticated operator passes.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}

		if len(roles) > 0 && !slices.ContainsFunc(claims.Roles, func(r string) bool {
			return slices.Contains(roles, r)
		}) {
			abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, i18n.ErrKeyForbidden)
			return
		}

		c.Next()
	}
}
