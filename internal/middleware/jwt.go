package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/logger"
	"github.com/guttosm/label-service/internal/service"
)

// ClaimsKey is the gin context key holding the verified *dto.Claims.
const ClaimsKey = "operator_claims"

// JWTAuth returns a middleware that requires a valid bearer token and stores
// the operator claims on the context.
func JWTAuth(verifier service.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			log := logger.Logger()
			log.Debug().Err(err).Str("request_id", GetRequestID(c)).Msg("Rejected bearer token")
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// OptionalJWT attaches operator claims when a valid bearer token is present
// and lets every other request through unchanged.
func OptionalJWT(verifier service.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := verifier.Verify(tokenString); err == nil {
				c.Set(ClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetClaims returns the verified operator claims, or nil.
func GetClaims(c *gin.Context) *dto.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*dto.Claims); ok {
			return claims
		}
	}
	return nil
}

// Actor copies the request ID and operator into the request context so the
// workflow service can attribute audit entries and print batches.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := service.WithActor(c.Request.Context(), service.Actor{
			RequestID: GetRequestID(c),
			Operator:  GetClaims(c).Operator(),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, key string) {
	abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, key)
}

// abortWithError writes a translated error envelope and stops the chain.
func abortWithError(c *gin.Context, status int, code, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	errorResp := dto.NewError(code, message).WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(status, errorResp)
}
