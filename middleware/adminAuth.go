package middleware

import (
	"net/http"

	"tiffin/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates an admin JWT and checks that its kitchen claim
// matches the :kitchenId route param, so one kitchen's passcode never opens
// another kitchen's dashboard.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		subject, kitchenID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		if param := c.Param("kitchenId"); param != "" && param != kitchenID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is not valid for this kitchen"})
			return
		}

		c.Set("adminID", subject)
		c.Set("kitchenID", kitchenID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
