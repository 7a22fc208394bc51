package reminders

import (
	"log"
	"net/http"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

// SendWhatsAppReminder delivers a rent reminder to one of the owner's
// tenants. Delivery prefers the tenant's WhatsApp number and falls back to
// email; with no provider configured the message is logged and acknowledged.
func SendWhatsAppReminder(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var input struct {
		TenantID uint   `json:"tenant_id" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload. Please provide a tenant_id and a message."})
		return
	}

	// Verify that the tenant belongs to one of the owner's properties
	tenant, ok := utils.TenantBelongsToOwner(utils.DB, input.TenantID, owner.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found or does not belong to you"})
		return
	}

	switch {
	case tenant.WhatsappNumber != "":
		if err := utils.SendWhatsAppMessage(tenant.WhatsappNumber, input.Message); err != nil {
			log.Printf("Failed to send WhatsApp reminder to tenant %d: %v", tenant.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": "Failed to send WhatsApp reminder"})
			return
		}
	case tenant.Email != "":
		if err := utils.SendReminderEmail(tenant.Email, input.Message); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": "Failed to send reminder email"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Tenant has no WhatsApp number or email on file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "WhatsApp reminder sent"})
}
