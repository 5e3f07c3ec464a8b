package notification

import (
	"log/slog"

	"github.com/pkprincekumar7/annual-sports-event-full/pkg/mailer"
	"github.com/pkprincekumar7/annual-sports-event-full/pkg/mailer/smtp"
)

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the service logger.
// Defaults to a no-op logger; logging never affects results.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSenderFactory overrides how transport senders are built from resolved
// SMTP credentials. Useful for tests that must observe or fake the transport.
func WithSenderFactory(factory func(cfg smtp.Config) mailer.Sender) Option {
	return func(s *Service) {
		if factory != nil {
			s.newSender = factory
		}
	}
}

// WithRenderer replaces the embedded template renderer.
func WithRenderer(renderer *mailer.Renderer) Option {
	return func(s *Service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}
