package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"studypal/pkg/response"
	"studypal/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the resulting scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			m.l.Debugf(ctx, "middleware.Auth: missing bearer token")
			response.Unauthorized(c)
			return
		}

		sc, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth.Verify: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
