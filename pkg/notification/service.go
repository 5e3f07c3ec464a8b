package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkprincekumar7/annual-sports-event-full/pkg/logger"
	"github.com/pkprincekumar7/annual-sports-event-full/pkg/mailer"
	"github.com/pkprincekumar7/annual-sports-event-full/pkg/mailer/smtp"
)

// msgNotConfigured is the caller-visible reason when no provider resolves.
const msgNotConfigured = "Email service not configured. Please contact administrator."

// passwordResetTemplate is the embedded template pair name.
const passwordResetTemplate = "password_reset"

// Result reports the outcome of a single send. Exactly one of the two shapes
// occurs: Success true with empty Error, or Success false with a non-empty
// Error.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Service dispatches transactional emails. Each call resolves the provider
// configuration, renders the message, and runs one transport session; there
// is no shared mutable state, so a Service is safe for concurrent use.
type Service struct {
	cfg       Config
	log       *slog.Logger
	renderer  *mailer.Renderer
	newSender func(cfg smtp.Config) mailer.Sender
}

// New creates a notification Service for the given settings.
func New(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg: cfg,
		log: logger.NewNope(),
		renderer: mailer.NewRendererWithConfig(templatesFS(), mailer.RendererConfig{
			LayoutDir: "layouts",
		}),
		newSender: func(cfg smtp.Config) mailer.Sender {
			return smtp.New(cfg)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// resetData feeds the password reset template pair.
type resetData struct {
	Name     string
	Password string
	AppName  string
}

// SendPasswordResetEmail sends a temporary password to toEmail and reports
// the outcome. It never returns an error or panics across this boundary:
// configuration gaps, render problems, and transport failures all come back
// as a Result with Success false.
//
// recipientName may be empty; the body then greets "User". newPassword is
// embedded literally in both body variants, so confidentiality relies on the
// transport's TLS.
func (s *Service) SendPasswordResetEmail(ctx context.Context, toEmail, newPassword, recipientName string) Result {
	log := s.log.With(
		slog.String("send_id", uuid.NewString()),
		slog.String("to", toEmail),
	)

	transport, ok := s.cfg.Resolve()
	if !ok {
		log.ErrorContext(ctx, "email transport not configured, cannot send password reset email")
		return Result{Success: false, Error: msgNotConfigured}
	}

	name := recipientName
	if name == "" {
		name = "User"
	}

	from := s.cfg.EmailFrom
	if from == "" {
		from = s.cfg.GmailUser
	}
	if from == "" {
		from = s.cfg.FallbackFrom
	}
	if from == "" {
		from = defaultFallbackFrom
	}

	m := mailer.New(s.newSender(transport), s.renderer, mailer.Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Password Reset - Sports Event Management",
	})

	err := m.Send(ctx, mailer.SendParams{
		To:       toEmail,
		Template: passwordResetTemplate,
		From:     mailer.Recipient(s.cfg.EmailFromName, from),
		Data: resetData{
			Name:     name,
			Password: newPassword,
			AppName:  s.cfg.AppName,
		},
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to send password reset email", slog.String("error", err.Error()))
		return Result{Success: false, Error: err.Error()}
	}

	log.InfoContext(ctx, "password reset email sent",
		slog.String("host", transport.Host),
		slog.Int("port", transport.Port),
	)
	return Result{Success: true}
}
