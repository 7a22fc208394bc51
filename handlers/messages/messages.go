package messages

import (
	"net/http"
	"time"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
)

func GetMessages(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var messages []models.Message
	if err := utils.DB.Where("sender_id = ? OR receiver_id = ?", owner.ID, owner.ID).
		Order("timestamp DESC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
	})
}

func SendMessage(c *gin.Context) {
	// Get the owner from the context
	ownerInterface, exists := c.Get("owner")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not found in context"})
		return
	}
	owner := ownerInterface.(models.Owner)

	var input struct {
		ReceiverID uint   `form:"receiver_id" json:"receiver_id" binding:"required"`
		PropertyID uint   `form:"property_id" json:"property_id"`
		Message    string `form:"message" json:"message" binding:"required"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please provide a receiver and a message."})
		return
	}

	var receiver models.Owner
	if err := utils.DB.First(&receiver, input.ReceiverID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
		return
	}

	// A property reference is optional, but when given it must belong to one
	// of the two parties.
	if input.PropertyID != 0 {
		var count int64
		utils.DB.Model(&models.Property{}).
			Where("id = ? AND owner_id IN ?", input.PropertyID, []uint{owner.ID, receiver.ID}).
			Count(&count)
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found or does not belong to either party"})
			return
		}
	}

	message := models.Message{
		SenderID:   owner.ID,
		ReceiverID: receiver.ID,
		PropertyID: input.PropertyID,
		Message:    input.Message,
		Timestamp:  time.Now(),
	}

	if err := utils.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully!",
		"sent":    message,
	})
}
