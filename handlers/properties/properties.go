package properties

import (
	"net/http"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

func GetProperties(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var properties []models.Property
	if err := utils.DB.Scopes(utils.OwnedProperty(owner.ID)).Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
	})
}

func AddProperty(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var input struct {
		Name         string  `form:"name" json:"name" binding:"required"`
		Address      string  `form:"address" json:"address"`
		PropertyType string  `form:"property_type" json:"property_type"`
		Bedrooms     int     `form:"bedrooms" json:"bedrooms"`
		Bathrooms    int     `form:"bathrooms" json:"bathrooms"`
		AreaSqft     float64 `form:"area_sqft" json:"area_sqft"`
		MonthlyRent  float64 `form:"monthly_rent" json:"monthly_rent"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please check the property fields and try again."})
		return
	}

	property := models.Property{
		Name:         input.Name,
		Address:      input.Address,
		PropertyType: input.PropertyType,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		AreaSqft:     input.AreaSqft,
		MonthlyRent:  input.MonthlyRent,
		OwnerID:      owner.ID,
	}

	if err := utils.DB.Create(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add property"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property added successfully!",
		"property": property,
	})
}
