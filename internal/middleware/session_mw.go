package middleware

import (
	"net/http"

	"careerconnect/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"

	// SessionCookie is the name of the cookie carrying the signed session token
	SessionCookie = "session"
)

// SessionMiddleware reads and verifies the session cookie. A request without
// a valid session is redirected to the login page rather than answered with
// an error status; the browser surface has no distinct "unauthorized" page.
func SessionMiddleware(sessionUtil *utils.SessionUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := sessionUtil.ValidateToken(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Set user information in context
		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}
