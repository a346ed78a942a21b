// internal/email/mailer/password_reset.go
package mailer

import "github.com/jaepaama/Employeehub/internal/email"

// PasswordResetTemplateData contains data for the password reset template
type PasswordResetTemplateData struct {
	Email string
}

// SendPasswordReset sends the simulated password reset email
func SendPasswordReset(s *email.Service, to string) error {
	templateData := PasswordResetTemplateData{
		Email: to,
	}

	fromName := "Employee Hub"

	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Reset your Employee Hub password",
		TemplateName: "password_reset",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
