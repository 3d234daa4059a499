package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"
)

type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
	ReplyTo string
}

// Mailer is the transactional-email capability. A nil Mailer means the
// capability is not configured and submissions must be rejected up front.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

type resendMailer struct {
	client *resend.Client
}

func NewResend(apiKey string) Mailer {
	return &resendMailer{client: resend.NewClient(apiKey)}
}

func (m *resendMailer) Send(ctx context.Context, msg *Message) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})

	return err
}
