package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// WatiMessage represents the structure of a message to send via the Wati API
type WatiMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendWhatsAppMessage delivers a message to a tenant's WhatsApp number via the
// Wati API. When no provider is configured the message is logged and reported
// as sent, keeping the endpoint usable as an integration stub.
func SendWhatsAppMessage(phoneNumber string, message string) error {
	if Cfg.WatiURL == "" || Cfg.WatiAPIKey == "" {
		log.Printf("WhatsApp provider not configured; reminder to %s logged only", phoneNumber)
		return nil
	}

	payload := WatiMessage{
		Phone:   phoneNumber,
		Message: message,
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WhatsApp message: %w", err)
	}

	req, err := http.NewRequest("POST", Cfg.WatiURL+"/api/v1/sendSessionMessage", bytes.NewBuffer(payloadJSON))
	if err != nil {
		return fmt.Errorf("failed to create Wati API request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+Cfg.WatiAPIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wati API returned status code %d", resp.StatusCode)
	}

	return nil
}
