package middleware

import (
	"net/http"
	"strings"

	"employee_task_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Auth requires a valid bearer token on the request. The username claim is
// stored in the context for handlers that want it.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization token required",
			})
			return
		}

		username, err := service.ParseJWT(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
