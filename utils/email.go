package utils

import (
	"log"

	"gopkg.in/gomail.v2"
)

// SendReminderEmail sends a rent reminder to a tenant's email address. Used
// as the delivery fallback when a tenant has no WhatsApp number. When SMTP is
// not configured the reminder is logged and reported as sent.
func SendReminderEmail(email string, message string) error {
	if Cfg.SMTPHost == "" {
		log.Printf("SMTP not configured; reminder to %s logged only", email)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", Cfg.SMTPSender)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Rent Reminder")
	m.SetBody("text/plain", message)

	d := gomail.NewDialer(Cfg.SMTPHost, Cfg.SMTPPort, Cfg.SMTPUser, Cfg.SMTPPass)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send reminder email to %s: %v", email, err)
		return err
	}

	log.Printf("Reminder email sent to %s", email)
	return nil
}
