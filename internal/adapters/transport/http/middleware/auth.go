package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mindxandria/library-backend/internal/app/auth/token"
)

// SubjectKey is the gin context key holding the authenticated user's email.
const SubjectKey = "auth.subject"

// RequireAuth rejects requests without a valid Bearer access token and puts
// the token subject into the context for handlers downstream.
func RequireAuth(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		subject, err := codec.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}

// Subject returns the authenticated email set by RequireAuth.
func Subject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}
