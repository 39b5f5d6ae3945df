package handler

import (
	"errors"
	"net/http"

	"careerconnect/internal/middleware"

	"github.com/gin-gonic/gin"
)

// renderError renders the generic error page. Internals are logged by the
// caller, never shown to the user.
func renderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
}

// getAuthUserID returns the authenticated user id placed in the context by
// the session middleware
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}
