package middleware

import (
	"net/http"

	"careerconnect/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware gates a route on the session role. A role mismatch redirects
// to the login page, the same as no session at all; there is no separate
// forbidden response.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

// EmployerMiddleware restricts a route to employer accounts
func EmployerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleEmployer)
}
