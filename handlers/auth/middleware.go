package auth

import (
	"net/http"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards owner-scoped routes. It validates the Bearer token,
// loads the owner row and places it in the request context as "owner".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		ownerID, err := utils.ExtractOwnerIDFromToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		var owner models.Owner
		if err := utils.DB.First(&owner, ownerID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found"})
			c.Abort()
			return
		}

		c.Set("owner", owner)

		c.Next()
	}
}
