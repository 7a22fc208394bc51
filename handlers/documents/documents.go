package documents

import (
	"net/http"
	"time"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

func GetDocuments(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var documents []models.Document
	if err := utils.DB.Scopes(utils.OwnedVia(owner.ID)).Order("uploaded_at DESC").Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": documents,
	})
}

func AddDocument(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var input struct {
		PropertyID   uint   `form:"property_id" json:"property_id" binding:"required"`
		TenantID     uint   `form:"tenant_id" json:"tenant_id"`
		DocumentType string `form:"document_type" json:"document_type"`
		FileName     string `form:"file_name" json:"file_name" binding:"required"`
		FileURL      string `form:"file_url" json:"file_url" binding:"required"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please check the document fields and try again."})
		return
	}

	// Verify that the property belongs to the owner
	if !utils.PropertyBelongsToOwner(utils.DB, input.PropertyID, owner.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found or does not belong to you"})
		return
	}

	document := models.Document{
		PropertyID:   input.PropertyID,
		DocumentType: input.DocumentType,
		FileName:     input.FileName,
		FileURL:      input.FileURL,
		UploadedAt:   time.Now(),
	}

	// A tenant reference is optional, but when given it must be one of the
	// owner's tenants.
	if input.TenantID != 0 {
		tenant, ok := utils.TenantBelongsToOwner(utils.DB, input.TenantID, owner.ID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found or does not belong to you"})
			return
		}
		document.TenantID = &tenant.ID
	}

	if err := utils.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add document"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Document added successfully!",
		"document": document,
	})
}
