package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGridNotifier sends resolution notifications through SendGrid
func NewSendGridNotifier(apiKey, fromEmail, fromName string) Notifier {
	if fromName == "" {
		fromName = "KIG Community"
	}
	return &sendGridNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridNotifier) SendIssueResolved(ctx context.Context, toEmail, toName, issueTitle string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("Your reported issue has been resolved: %s", issueTitle)
	body := fmt.Sprintf("Hello %s,\n\nThe issue you reported, %q, has been marked as resolved.\n\nThank you for helping keep the community running.\n\nKIG", toName, issueTitle)

	message := mail.NewSingleEmail(from, subject, recipient, body, "")
	client := sendgrid.NewSendClient(s.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}

// NoopNotifier is used when no email provider is configured
type NoopNotifier struct{}

func (NoopNotifier) SendIssueResolved(ctx context.Context, toEmail, toName, issueTitle string) error {
	return nil
}
