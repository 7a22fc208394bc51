package dashboard

import (
	"net/http"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboard computes the owner's portfolio stats. Everything is recomputed
// per request; portfolios are small enough that caching would be noise.
func GetDashboard(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var totalProperties int64
	if err := utils.DB.Model(&models.Property{}).Scopes(utils.OwnedProperty(owner.ID)).Count(&totalProperties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	var activeTenants int64
	if err := utils.DB.Model(&models.Tenant{}).Scopes(utils.OwnedVia(owner.ID)).
		Where("is_active = ?", true).Count(&activeTenants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	var monthlyIncome float64
	if err := utils.DB.Model(&models.Property{}).Scopes(utils.OwnedProperty(owner.ID)).
		Select("COALESCE(SUM(monthly_rent), 0)").Scan(&monthlyIncome).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	var recentPayments []models.Payment
	if err := utils.DB.Scopes(utils.OwnedVia(owner.ID)).
		Order("payment_date DESC").Limit(5).Find(&recentPayments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent payments"})
		return
	}

	var pendingMaintenance int64
	if err := utils.DB.Model(&models.MaintenanceRequest{}).Scopes(utils.OwnedVia(owner.ID)).
		Where("status <> ?", "completed").Count(&pendingMaintenance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_properties":    totalProperties,
		"active_tenants":      activeTenants,
		"monthly_income":      monthlyIncome,
		"recent_payments":     recentPayments,
		"pending_maintenance": pendingMaintenance,
	})
}
