package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

// SendGridMailer delivers urgent notice emails. A nil mailer (no API key
// configured) is valid; callers treat email as best effort.
type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendGridMailer(apiKey, fromName, fromEmail string) *SendGridMailer {
	if apiKey == "" {
		return nil
	}
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *SendGridMailer) SendUrgentNotice(ctx context.Context, to []string, title, content string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	subject := "[URGENT] " + title

	for _, addr := range to {
		msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", addr), content, "")
		resp, err := m.client.SendWithContext(ctx, msg)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
		}
		utils.Logger.WithField("to", addr).Debug("urgent notice email sent")
	}
	return nil
}
