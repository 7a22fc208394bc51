package auth

import (
	"net/http"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context) {
	var input struct {
		Email    string `form:"email" json:"email" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please provide a valid email and password."})
		return
	}

	var owner models.Owner
	if err := utils.DB.Where("email = ?", input.Email).First(&owner).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	tokenString, err := utils.GenerateAccessToken(owner.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome back, " + owner.Username + "!",
		"token":   tokenString,
		"owner": gin.H{
			"id":       owner.ID,
			"username": owner.Username,
			"email":    owner.Email,
		},
	})
}
