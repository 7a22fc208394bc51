package auth

import (
	"log"
	"net/http"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Register(c *gin.Context) {
	var input struct {
		Username string `form:"username" json:"username" binding:"required"`
		Email    string `form:"email" json:"email" binding:"required,email"`
		Password string `form:"password" json:"password" binding:"required,min=6"`
		Phone    string `form:"phone" json:"phone"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please provide a username, a valid email and a password of at least 6 characters."})
		return
	}

	// Check if the email or username is already taken
	var existing models.Owner
	if err := utils.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	if err := utils.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your password. Please try again."})
		return
	}

	owner := models.Owner{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Phone:        input.Phone,
	}

	if err := utils.DB.Create(&owner).Error; err != nil {
		log.Printf("Failed to create owner account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "We encountered an issue creating your account. Please try again later."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please login."})
}
