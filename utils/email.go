package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func GetEmailConfig() *EmailConfig {
	return &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func SendEmail(to, subject, htmlBody string) error {
	config := GetEmailConfig()
	if config.Host == "" || config.Port == "" || config.From == "" {
		return fmt.Errorf("SMTP not configured")
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		config.From, to, subject)
	msg := []byte(headers + htmlBody)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	addr := config.Host + ":" + config.Port
	return smtp.SendMail(addr, auth, config.From, []string{to}, msg)
}

func SendPasswordResetEmail(email, name, resetToken, adminURL string) {
	go func() {
		resetLink := fmt.Sprintf("%s/reset-password?token=%s", adminURL, resetToken)
		subject := "Reset Your Password - Store Admin"
		body := fmt.Sprintf(`<h2>Password Reset Request</h2>
<p>Hi %s,</p>
<p>We received a request to reset your admin console password. Click the link below to set a new password:</p>
<p><a href="%s" style="display:inline-block;padding:12px 24px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:8px;font-weight:bold;">Reset Password</a></p>
<p>This link will expire in 1 hour.</p>
<p>If you didn't request this, you can safely ignore this email.</p>`, firstName(name), resetLink)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send password reset email to %s: %v", email, err)
		}
	}()
}

// SendAdminInvitationEmail notifies a newly created admin of their account and
// initial password.
func SendAdminInvitationEmail(email, name, role, password, adminURL string) {
	go func() {
		roleDisplay := "Admin"
		if role == "super_admin" {
			roleDisplay = "Super Admin"
		}

		subject := fmt.Sprintf("You've been added as %s - Store Admin", roleDisplay)
		body := fmt.Sprintf(`<h2>Welcome to the Store Admin Console!</h2>
<p>Hi %s,</p>
<p>An account has been created for you with the role <strong>%s</strong>.</p>
<div style="background:#f5f5f5;padding:15px;border-radius:8px;margin:20px 0;">
<p style="margin:5px 0;"><strong>Email:</strong> %s</p>
<p style="margin:5px 0;"><strong>Temporary Password:</strong> %s</p>
</div>
<p><a href="%s" style="display:inline-block;padding:12px 24px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:8px;font-weight:bold;">Open Admin Console</a></p>
<p><strong>Important:</strong> Please log in and change your password immediately.</p>`,
			firstName(name), roleDisplay, email, password, adminURL)

		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send admin invitation email to %s: %v", email, err)
		} else {
			log.Printf("Admin invitation email sent to %s", email)
		}
	}()
}

func firstName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "there"
	}
	return strings.Split(name, " ")[0]
}
