// Package mailer sends transactional email through SendGrid. Only the
// invite flow uses it, and always best-effort: a failed email never
// fails the action that triggered it.
package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendgridMailer sends invite notifications via the SendGrid API.
type SendgridMailer struct {
	client *sendgrid.Client
	from   string
}

// NewSendgridMailer creates a mailer with the given API key and sender
// address.
func NewSendgridMailer(apiKey, fromEmail string) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   fromEmail,
	}
}

// SendInvite notifies an invited member that an account was created
// for them. The temporary password itself is intentionally NOT mailed;
// the inviter hands it over out of band.
func (m *SendgridMailer) SendInvite(ctx context.Context, toEmail, toName, officeName string) error {
	from := mail.NewEmail(officeName, m.from)
	to := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("Você foi convidado para %s", officeName)
	plain := fmt.Sprintf(
		"Olá %s,\n\nUma conta foi criada para você no escritório %s. "+
			"Solicite sua senha temporária a quem enviou o convite e troque-a no primeiro acesso.\n",
		toName, officeName)
	html := fmt.Sprintf(
		"<p>Olá %s,</p><p>Uma conta foi criada para você no escritório <strong>%s</strong>. "+
			"Solicite sua senha temporária a quem enviou o convite e troque-a no primeiro acesso.</p>",
		toName, officeName)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed with status %d", resp.StatusCode)
	}
	return nil
}
