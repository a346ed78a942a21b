// internal/notify/email.go
package notify

import (
	"context"
	"fmt"

	"github.com/jaepaama/Employeehub/internal/email"
	"github.com/jaepaama/Employeehub/internal/email/mailer"
)

// Email delivers completion events to the HR mailbox through the email
// service.
type Email struct {
	service   *email.Service
	hrAddress string
}

func NewEmail(service *email.Service, hrAddress string) *Email {
	return &Email{service: service, hrAddress: hrAddress}
}

func (n *Email) CompletionRecorded(ctx context.Context, event CompletionEvent) error {
	err := mailer.SendCompletionNotice(n.service, n.hrAddress, event.EmployeeEmail, event.ModuleTitle, event.OccurredAt)
	if err != nil {
		return fmt.Errorf("sending completion notice: %w", err)
	}
	return nil
}
