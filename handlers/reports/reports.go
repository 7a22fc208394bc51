package reports

import (
	"net/http"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

// GetReports returns a financial summary for the owner's portfolio: completed
// payment income against recorded expenses.
func GetReports(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var totalIncome float64
	if err := utils.DB.Model(&models.Payment{}).Scopes(utils.OwnedVia(owner.ID)).
		Where("status = ?", "completed").
		Select("COALESCE(SUM(amount), 0)").Scan(&totalIncome).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	var totalExpenses float64
	if err := utils.DB.Model(&models.Expense{}).Scopes(utils.OwnedVia(owner.ID)).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalExpenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_income":   totalIncome,
		"total_expenses": totalExpenses,
		"net_income":     totalIncome - totalExpenses,
	})
}
