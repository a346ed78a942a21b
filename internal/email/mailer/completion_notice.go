// internal/email/mailer/completion_notice.go
package mailer

import (
	"time"

	"github.com/jaepaama/Employeehub/internal/email"
)

// CompletionTemplateData contains data for the completion notice template
type CompletionTemplateData struct {
	EmployeeEmail string
	ModuleTitle   string
	CompletedAt   string
}

// SendCompletionNotice tells HR that an employee finished a training module
func SendCompletionNotice(s *email.Service, to, employeeEmail, moduleTitle string, completedAt time.Time) error {
	templateData := CompletionTemplateData{
		EmployeeEmail: employeeEmail,
		ModuleTitle:   moduleTitle,
		CompletedAt:   completedAt.Format(time.RFC3339),
	}

	fromName := "Employee Hub"

	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Training completed: " + moduleTitle,
		TemplateName: "completion_notice",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
