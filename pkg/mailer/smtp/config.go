package smtp

// Config holds SMTP transport configuration.
// Embed this in your app config for env parsing.
type Config struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	// Secure selects TLS-on-connect. When false, the connection is upgraded
	// with STARTTLS after the initial handshake. The two modes are mutually
	// exclusive.
	Secure bool `env:"SMTP_SECURE"`
}
