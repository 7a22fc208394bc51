package expenses

import (
	"net/http"
	"time"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

func GetExpenses(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var expenses []models.Expense
	if err := utils.DB.Scopes(utils.OwnedVia(owner.ID)).Order("expense_date DESC").Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses": expenses,
	})
}

func AddExpense(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var input struct {
		PropertyID  uint      `form:"property_id" json:"property_id" binding:"required"`
		Category    string    `form:"category" json:"category"`
		Description string    `form:"description" json:"description"`
		Amount      float64   `form:"amount" json:"amount" binding:"required"`
		ExpenseDate time.Time `form:"expense_date" time_format:"2006-01-02"`
		Vendor      string    `form:"vendor" json:"vendor"`
		ReceiptURL  string    `form:"receipt_url" json:"receipt_url"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please check the expense fields and try again."})
		return
	}

	// Verify that the property belongs to the owner
	if !utils.PropertyBelongsToOwner(utils.DB, input.PropertyID, owner.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found or does not belong to you"})
		return
	}

	expenseDate := input.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	expense := models.Expense{
		PropertyID:  input.PropertyID,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		ExpenseDate: expenseDate,
		Vendor:      input.Vendor,
		ReceiptURL:  input.ReceiptURL,
	}

	if err := utils.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense recorded successfully!",
		"expense": expense,
	})
}
