package smtp

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail"

	"github.com/pkprincekumar7/annual-sports-event-full/pkg/mailer"
)

// Sender implements mailer.Sender over SMTP submission.
type Sender struct {
	config Config
}

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender.
// The multipart/alternative structure puts the plain text part first so
// clients that cannot render HTML fall back to it.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}

	m := s.buildMessage(email)

	if err := s.dialer().DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}

	return nil
}

func (s *Sender) buildMessage(email *mailer.Email) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", email.From)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	for name, value := range email.Headers {
		m.SetHeader(name, value)
	}

	switch {
	case email.Text != "" && email.HTML != "":
		m.SetBody("text/plain", email.Text)
		m.AddAlternative("text/html", email.HTML)
	case email.Text != "":
		m.SetBody("text/plain", email.Text)
	default:
		m.SetBody("text/html", email.HTML)
	}

	return m
}

func (s *Sender) dialer() *mail.Dialer {
	d := mail.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	d.TLSConfig = &tls.Config{ServerName: s.config.Host}

	if s.config.Secure {
		d.SSL = true
	} else {
		d.StartTLSPolicy = mail.MandatoryStartTLS
	}

	return d
}
