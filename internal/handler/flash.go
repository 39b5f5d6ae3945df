package handler

import "github.com/gin-gonic/gin"

// flashCookie holds a one-shot status message: set on a redirect, consumed
// and cleared by the next page render.
const flashCookie = "flash"

// setFlash stores a status message for the next rendered page
func setFlash(c *gin.Context, message string) {
	// gin url-encodes cookie values, so arbitrary message text is safe
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// takeFlash returns the pending status message, if any, and clears it
func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}
