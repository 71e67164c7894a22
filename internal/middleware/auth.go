package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wekeza-crm/internal/pkg/jwt"
	"wekeza-crm/internal/pkg/response"
)

const actorKey = "actor"

// Auth validates a bearer token and records its subject as the acting user.
func Auth(verifier *jwt.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization header", nil)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			response.Error(c, http.StatusUnauthorized, "invalid authorization header", nil)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid token", err)
			return
		}

		c.Set(actorKey, claims.Subject)
		c.Next()
	}
}

// Actor returns the authenticated subject for the request, or "system"
// when no identity was established.
func Actor(c *gin.Context) string {
	if v, ok := c.Get(actorKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "system"
}
