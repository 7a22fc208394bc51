package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout acknowledges sign-out. Tokens are stateless, so the client discards
// its copy; there is no server-side session to tear down.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful.",
	})
}
