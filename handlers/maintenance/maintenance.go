package maintenance

import (
	"net/http"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

func GetMaintenanceRequests(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var requests []models.MaintenanceRequest
	if err := utils.DB.Scopes(utils.OwnedVia(owner.ID)).Order("created_at DESC").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch maintenance requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"maintenance_requests": requests,
	})
}

func AddMaintenanceRequest(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var input struct {
		PropertyID  uint   `form:"property_id" json:"property_id" binding:"required"`
		TenantID    uint   `form:"tenant_id" json:"tenant_id"`
		IssueType   string `form:"issue_type" json:"issue_type" binding:"required"`
		Description string `form:"description" json:"description"`
		Priority    string `form:"priority" json:"priority"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please check the maintenance request fields and try again."})
		return
	}

	// Verify that the property belongs to the owner
	if !utils.PropertyBelongsToOwner(utils.DB, input.PropertyID, owner.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found or does not belong to you"})
		return
	}

	// A tenant reference is optional, but when given it must be one of the
	// owner's tenants.
	if input.TenantID != 0 {
		if _, ok := utils.TenantBelongsToOwner(utils.DB, input.TenantID, owner.ID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found or does not belong to you"})
			return
		}
	}

	request := models.MaintenanceRequest{
		PropertyID:  input.PropertyID,
		TenantID:    input.TenantID,
		IssueType:   input.IssueType,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      "open",
	}

	if err := utils.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":             "Maintenance request created successfully!",
		"maintenance_request": request,
	})
}
