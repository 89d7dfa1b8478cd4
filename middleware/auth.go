package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"turfdesk/services/session"
	"turfdesk/utils"
)

// SessionKey is the gin context key the resolved operator session is stored under.
const SessionKey = "operatorSession"

// AuthMiddleware resolves the bearer token to an operator session and
// stores it in the request context.
func AuthMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, err := utils.ExtractSessionIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		sess, err := store.Get(c.Request.Context(), sessionID, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}
