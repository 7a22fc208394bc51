package payments

import (
	"net/http"
	"time"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

func GetPayments(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var payments []models.Payment
	if err := utils.DB.Scopes(utils.OwnedVia(owner.ID)).Order("payment_date DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
	})
}

func AddPayment(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var input struct {
		PropertyID    uint      `form:"property_id" json:"property_id" binding:"required"`
		TenantID      uint      `form:"tenant_id" json:"tenant_id" binding:"required"`
		Amount        float64   `form:"amount" json:"amount" binding:"required"`
		PaymentDate   time.Time `form:"payment_date" time_format:"2006-01-02" binding:"required"`
		PaymentMethod string    `form:"payment_method" json:"payment_method"`
		PaymentType   string    `form:"payment_type" json:"payment_type"`
		Status        string    `form:"status" json:"status"`
		Notes         string    `form:"notes" json:"notes"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please check the payment fields and try again."})
		return
	}

	// Verify that the property belongs to the owner
	if !utils.PropertyBelongsToOwner(utils.DB, input.PropertyID, owner.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found or does not belong to you"})
		return
	}

	// Verify that the tenant belongs to one of the owner's properties
	tenant, ok := utils.TenantBelongsToOwner(utils.DB, input.TenantID, owner.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found or does not belong to you"})
		return
	}

	status := input.Status
	if status == "" {
		status = "completed"
	}

	payment := models.Payment{
		PropertyID:    input.PropertyID,
		TenantID:      tenant.ID,
		Amount:        input.Amount,
		PaymentDate:   input.PaymentDate,
		PaymentMethod: input.PaymentMethod,
		PaymentType:   input.PaymentType,
		Status:        status,
		Notes:         input.Notes,
	}

	if err := utils.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded successfully!",
		"payment": payment,
	})
}
