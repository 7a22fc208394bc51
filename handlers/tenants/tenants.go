package tenants

import (
	"net/http"
	"time"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

func GetTenants(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var tenants []models.Tenant
	if err := utils.DB.Scopes(utils.OwnedVia(owner.ID)).Find(&tenants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tenants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tenants": tenants,
	})
}

func AddTenant(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var input struct {
		Name            string    `form:"name" json:"name" binding:"required"`
		Email           string    `form:"email" json:"email"`
		Phone           string    `form:"phone" json:"phone" binding:"required"`
		WhatsappNumber  string    `form:"whatsapp_number" json:"whatsapp_number"`
		LeaseStart      time.Time `form:"lease_start" time_format:"2006-01-02" binding:"required"`
		LeaseEnd        time.Time `form:"lease_end" time_format:"2006-01-02" binding:"required"`
		SecurityDeposit float64   `form:"security_deposit" json:"security_deposit"`
		PropertyID      uint      `form:"property_id" json:"property_id" binding:"required"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please check the tenant fields and try again."})
		return
	}

	if input.LeaseEnd.Before(input.LeaseStart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lease end date must be on or after the lease start date."})
		return
	}

	// Verify that the property belongs to the owner
	if !utils.PropertyBelongsToOwner(utils.DB, input.PropertyID, owner.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found or does not belong to you"})
		return
	}

	tenant := models.Tenant{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		WhatsappNumber:  input.WhatsappNumber,
		LeaseStart:      input.LeaseStart,
		LeaseEnd:        input.LeaseEnd,
		SecurityDeposit: input.SecurityDeposit,
		PropertyID:      input.PropertyID,
		IsActive:        true,
	}

	if err := utils.DB.Create(&tenant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add tenant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tenant added successfully!",
		"tenant":  tenant,
	})
}
