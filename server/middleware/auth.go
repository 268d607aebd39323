package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrust/auth/authctx"
	"github.com/skillsenselab/fintrust/auth/token"
	apperrors "github.com/skillsenselab/fintrust/errors"
	"github.com/skillsenselab/fintrust/observability"
)

const bearerPrefix = "Bearer "

// TokenVerifier validates a token string and returns the caller identity.
type TokenVerifier interface {
	Verify(tokenString string) (token.Caller, error)
}

// Auth returns a Gin middleware that gates routes behind a Bearer token.
// It checks the exact scheme prefix, a non-empty token body, and delegates
// signature/expiry/payload checks to the verifier. Every failure aborts
// with the same generic 401 envelope; which check failed is not revealed.
// On success the caller is stored in the request context.
func Auth(verifier TokenVerifier, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, metrics)
			return
		}

		raw := strings.TrimSpace(header[len(bearerPrefix):])
		if raw == "" {
			abortUnauthorized(c, metrics)
			return
		}

		caller, err := verifier.Verify(raw)
		if err != nil {
			abortUnauthorized(c, metrics)
			return
		}

		c.Request = c.Request.WithContext(authctx.With(c.Request.Context(), caller))
		c.Next()
	}
}

// RequireOwner returns a Gin middleware enforcing that the named path
// parameter equals the caller's subject. A valid token for the wrong
// identity gets 403 whether or not the requested identity exists.
func RequireOwner(param, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := authctx.From(c.Request.Context())
		if !ok {
			appErr := apperrors.Unauthorized()
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}
		if c.Param(param) != caller.Subject {
			appErr := apperrors.Forbidden(message)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, metrics *observability.Metrics) {
	metrics.RecordAuthFailure(c.Request.Context(), "token")
	appErr := apperrors.Unauthorized()
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
