package notification

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the settings surface for outgoing email. It is a plain value:
// resolution reads it once per call and never mutates it, so a single Config
// can be shared across concurrent sends.
type Config struct {
	// EmailProvider selects the delivery provider.
	EmailProvider Provider `env:"EMAIL_PROVIDER"`

	// Gmail provider credentials.
	GmailUser        string `env:"GMAIL_USER"`
	GmailAppPassword string `env:"GMAIL_APP_PASSWORD"`

	// SendGrid provider credentials. SendgridUser defaults to the literal
	// "apikey" username SendGrid expects for API-key authentication.
	SendgridUser   string `env:"SENDGRID_USER"`
	SendgridAPIKey string `env:"SENDGRID_API_KEY"`

	// Resend provider credentials.
	ResendAPIKey string `env:"RESEND_API_KEY"`

	// Generic SMTP provider settings.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPSecure   bool   `env:"SMTP_SECURE"`

	// Sender identity and body branding.
	EmailFrom     string `env:"EMAIL_FROM"`
	EmailFromName string `env:"EMAIL_FROM_NAME"`
	AppName       string `env:"APP_NAME" envDefault:"Sports Event Management"`

	// FallbackFrom is used when neither EmailFrom nor GmailUser is set.
	FallbackFrom string `env:"EMAIL_FALLBACK_FROM" envDefault:"noreply@sportsevent.com"`
}

// LoadFromEnv builds a Config from the process environment, loading a local
// .env file first when one exists. Malformed numeric or boolean values keep
// their defaults; a provider missing credentials simply resolves as not
// configured later, so loading never fails.
func LoadFromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		EmailProvider:    Provider(os.Getenv("EMAIL_PROVIDER")),
		GmailUser:        os.Getenv("GMAIL_USER"),
		GmailAppPassword: os.Getenv("GMAIL_APP_PASSWORD"),
		SendgridUser:     os.Getenv("SENDGRID_USER"),
		SendgridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         submissionPort,
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		EmailFrom:        os.Getenv("EMAIL_FROM"),
		EmailFromName:    os.Getenv("EMAIL_FROM_NAME"),
		AppName:          os.Getenv("APP_NAME"),
		FallbackFrom:     os.Getenv("EMAIL_FALLBACK_FROM"),
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTPPort = port
		}
	}
	if v := os.Getenv("SMTP_SECURE"); v != "" {
		if secure, err := strconv.ParseBool(v); err == nil {
			cfg.SMTPSecure = secure
		}
	}
	if cfg.AppName == "" {
		cfg.AppName = "Sports Event Management"
	}
	if cfg.FallbackFrom == "" {
		cfg.FallbackFrom = defaultFallbackFrom
	}

	return cfg
}
