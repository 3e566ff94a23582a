package middleware

import (
	"github.com/gin-gonic/gin"

	"github-manager/internal/model"
	"github-manager/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the X-API-Key header to a caller scope. Missing or unknown
// keys are rejected with 401; authorization per action happens in the use
// cases.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, ok := m.scopes[key]
		if !ok {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: unknown API key")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the scope set by Auth. The zero scope means the
// request was not authenticated.
func ScopeFromContext(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
