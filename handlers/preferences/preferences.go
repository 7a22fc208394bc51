package preferences

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const darkModeCookieMaxAge = 365 * 24 * 3600

// ToggleDarkMode flips the client-side theme preference. The preference is a
// pure UI concern kept in a cookie, not in the store.
func ToggleDarkMode(c *gin.Context) {
	next := "true"
	if current, err := c.Cookie("dark_mode"); err == nil && current == "true" {
		next = "false"
	}
	c.SetCookie("dark_mode", next, darkModeCookieMaxAge, "/", "", false, false)

	referer := c.GetHeader("Referer")
	if referer == "" {
		referer = "/dashboard"
	}
	c.Redirect(http.StatusFound, referer)
}
