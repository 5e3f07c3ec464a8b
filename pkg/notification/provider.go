package notification

import (
	"github.com/pkprincekumar7/annual-sports-event-full/pkg/mailer/smtp"
)

// Provider identifies an email-delivery backend. The named providers use
// fixed SMTP submission endpoints; ProviderSMTP is a generic passthrough for
// any relay. Anything else never resolves.
type Provider string

const (
	ProviderGmail    Provider = "gmail"
	ProviderSendgrid Provider = "sendgrid"
	ProviderResend   Provider = "resend"
	ProviderSMTP     Provider = "smtp"
)

const (
	gmailHost    = "smtp.gmail.com"
	sendgridHost = "smtp.sendgrid.net"
	resendHost   = "smtp.resend.com"

	// Standard SMTP submission port; all named providers use STARTTLS on it.
	submissionPort = 587

	// SendGrid's fixed username for API-key auth.
	sendgridAPIKeyUser = "apikey"
	// Resend's fixed SMTP username.
	resendUser = "resend"

	defaultFallbackFrom = "noreply@sportsevent.com"
)

// Resolve maps the selected provider to complete SMTP transport credentials.
// Resolution is all-or-nothing: the second return value is false when the
// provider is unrecognized or any field it depends on is empty, and in that
// case the returned config is the zero value. Resolve is pure; it performs
// no I/O and has no side effects.
func (c Config) Resolve() (smtp.Config, bool) {
	switch c.EmailProvider {
	case ProviderGmail:
		if c.GmailUser == "" || c.GmailAppPassword == "" {
			return smtp.Config{}, false
		}
		return smtp.Config{
			Host:     gmailHost,
			Port:     submissionPort,
			Username: c.GmailUser,
			Password: c.GmailAppPassword,
		}, true

	case ProviderSendgrid:
		if c.SendgridAPIKey == "" {
			return smtp.Config{}, false
		}
		user := c.SendgridUser
		if user == "" {
			user = sendgridAPIKeyUser
		}
		return smtp.Config{
			Host:     sendgridHost,
			Port:     submissionPort,
			Username: user,
			Password: c.SendgridAPIKey,
		}, true

	case ProviderResend:
		if c.ResendAPIKey == "" {
			return smtp.Config{}, false
		}
		return smtp.Config{
			Host:     resendHost,
			Port:     submissionPort,
			Username: resendUser,
			Password: c.ResendAPIKey,
		}, true

	case ProviderSMTP:
		if c.SMTPHost == "" || c.SMTPUser == "" || c.SMTPPassword == "" {
			return smtp.Config{}, false
		}
		port := c.SMTPPort
		if port <= 0 {
			port = submissionPort
		}
		return smtp.Config{
			Host:     c.SMTPHost,
			Port:     port,
			Username: c.SMTPUser,
			Password: c.SMTPPassword,
			Secure:   c.SMTPSecure,
		}, true

	default:
		return smtp.Config{}, false
	}
}
