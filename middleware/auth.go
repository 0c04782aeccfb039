package middleware

import (
	"net/http"
	"strings"

	"tiffin/utils"

	"github.com/gin-gonic/gin"
)

// bearerToken pulls the token out of the Authorization header, or "" when the
// header is missing or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// StudentAuthMiddleware validates a student JWT and sets studentID and
// kitchenID in the request context. Admin tokens pass too: an admin can do
// anything a student can.
func StudentAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		subject, kitchenID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if role != utils.RoleStudent && role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("studentID", subject)
		c.Set("kitchenID", kitchenID)
		c.Set("role", role)
		c.Next()
	}
}
