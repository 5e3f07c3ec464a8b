package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/pkprincekumar7/annual-sports-event-full/pkg/mailer"
	"github.com/pkprincekumar7/annual-sports-event-full/pkg/mailer/smtp"
)

// fakeSender records sent emails instead of dialing anything.
type fakeSender struct {
	err  error
	mu   sync.Mutex
	sent []*mailer.Email
}

func (f *fakeSender) Send(_ context.Context, email *mailer.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, email)
	return f.err
}

func (f *fakeSender) last(t *testing.T) *mailer.Email {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1]
}

// newTestService wires a Service to the fake and records every resolved
// transport config handed to the sender factory.
func newTestService(cfg Config, fake *fakeSender) (*Service, *[]smtp.Config) {
	var mu sync.Mutex
	var resolved []smtp.Config
	svc := New(cfg, WithSenderFactory(func(c smtp.Config) mailer.Sender {
		mu.Lock()
		resolved = append(resolved, c)
		mu.Unlock()
		return fake
	}))
	return svc, &resolved
}

func gmailConfig() Config {
	return Config{
		EmailProvider:    ProviderGmail,
		GmailUser:        "team@gmail.com",
		GmailAppPassword: "app-password",
		EmailFromName:    "Sports Events",
		AppName:          "Sports Event Management",
		FallbackFrom:     "noreply@sportsevent.com",
	}
}

func TestSendPasswordResetEmail_NotConfigured(t *testing.T) {
	t.Parallel()

	factoryCalls := 0
	svc := New(Config{}, WithSenderFactory(func(smtp.Config) mailer.Sender {
		factoryCalls++
		return &fakeSender{}
	}))

	res := svc.SendPasswordResetEmail(context.Background(), "user@example.com", "tmp-1234", "Alice")

	require.False(t, res.Success)
	require.Equal(t, "Email service not configured. Please contact administrator.", res.Error)
	require.Zero(t, factoryCalls, "no transport may be built on the unconfigured path")
}

func TestSendPasswordResetEmail_Success(t *testing.T) {
	t.Parallel()

	fake := &fakeSender{}
	svc, _ := newTestService(gmailConfig(), fake)

	res := svc.SendPasswordResetEmail(context.Background(), "user@example.com", "tmp-1234", "Alice")

	require.True(t, res.Success)
	require.Empty(t, res.Error)

	email := fake.last(t)
	require.Equal(t, []string{"user@example.com"}, email.To)
	require.Equal(t, "Password Reset - Sports Event Management", email.Subject)
	require.Equal(t, "Sports Events <team@gmail.com>", email.From)
	require.Contains(t, email.Text, "Hello Alice,")
	require.Contains(t, email.Text, "tmp-1234")
	require.Contains(t, email.Text, "change this password immediately after logging in")
	require.Contains(t, email.HTML, "Hello Alice,")
	require.Contains(t, email.HTML, "<strong>tmp-1234</strong>")
	require.Contains(t, email.HTML, "Sports Event Management")
}

func TestSendPasswordResetEmail_DefaultRecipientName(t *testing.T) {
	t.Parallel()

	fake := &fakeSender{}
	svc, _ := newTestService(gmailConfig(), fake)

	res := svc.SendPasswordResetEmail(context.Background(), "user@example.com", "tmp-1234", "")

	require.True(t, res.Success)

	email := fake.last(t)
	require.Contains(t, email.Text, "Hello User,")
	require.Contains(t, email.HTML, "Hello User,")
}

func TestSendPasswordResetEmail_SecretPassesVerbatim(t *testing.T) {
	t.Parallel()

	secret := `p@ss<w>&"rd`

	fake := &fakeSender{}
	svc, _ := newTestService(gmailConfig(), fake)

	res := svc.SendPasswordResetEmail(context.Background(), "user@example.com", secret, "Alice")

	require.True(t, res.Success)

	email := fake.last(t)
	require.Contains(t, email.Text, secret)
	require.Contains(t, email.HTML, secret)
}

func TestSendPasswordResetEmail_FromFallbackChain(t *testing.T) {
	t.Parallel()

	t.Run("explicit from wins", func(t *testing.T) {
		t.Parallel()

		cfg := gmailConfig()
		cfg.EmailFrom = "hello@sportsevent.com"
		cfg.EmailFromName = ""

		fake := &fakeSender{}
		svc, _ := newTestService(cfg, fake)

		svc.SendPasswordResetEmail(context.Background(), "u@e.com", "p", "A")
		require.Equal(t, "hello@sportsevent.com", fake.last(t).From)
	})

	t.Run("gmail user as fallback", func(t *testing.T) {
		t.Parallel()

		cfg := gmailConfig()
		cfg.EmailFromName = ""

		fake := &fakeSender{}
		svc, _ := newTestService(cfg, fake)

		svc.SendPasswordResetEmail(context.Background(), "u@e.com", "p", "A")
		require.Equal(t, "team@gmail.com", fake.last(t).From)
	})

	t.Run("placeholder as last resort", func(t *testing.T) {
		t.Parallel()

		cfg := Config{
			EmailProvider: ProviderSMTP,
			SMTPHost:      "mail.example.com",
			SMTPUser:      "mailer",
			SMTPPassword:  "secret",
		}

		fake := &fakeSender{}
		svc, _ := newTestService(cfg, fake)

		svc.SendPasswordResetEmail(context.Background(), "u@e.com", "p", "A")
		require.Equal(t, "noreply@sportsevent.com", fake.last(t).From)
	})
}

func TestSendPasswordResetEmail_SecureFlagPropagation(t *testing.T) {
	t.Parallel()

	for _, secure := range []bool{true, false} {
		cfg := Config{
			EmailProvider: ProviderSMTP,
			SMTPHost:      "mail.example.com",
			SMTPPort:      587,
			SMTPUser:      "mailer",
			SMTPPassword:  "secret",
			SMTPSecure:    secure,
		}

		fake := &fakeSender{}
		svc, resolved := newTestService(cfg, fake)

		res := svc.SendPasswordResetEmail(context.Background(), "u@e.com", "p", "A")

		require.True(t, res.Success)
		require.Len(t, *resolved, 1)
		require.Equal(t, secure, (*resolved)[0].Secure)
	}
}

func TestSendPasswordResetEmail_TransportFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeSender{err: errors.New("535 authentication failed")}
	svc, _ := newTestService(gmailConfig(), fake)

	res := svc.SendPasswordResetEmail(context.Background(), "user@example.com", "tmp-1234", "Alice")

	require.False(t, res.Success)
	require.NotEmpty(t, res.Error)
	require.Contains(t, res.Error, "535 authentication failed")
}

func TestSendPasswordResetEmail_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	fake := &fakeSender{}
	svc, _ := newTestService(gmailConfig(), fake)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			res := svc.SendPasswordResetEmail(context.Background(), fmt.Sprintf("user%d@example.com", i), "tmp-1234", "Alice")
			if !res.Success {
				return errors.New(res.Error)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.sent, 8)
}
