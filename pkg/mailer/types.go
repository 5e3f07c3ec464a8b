package mailer

import "fmt"

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
// The Text body is the primary content; HTML is attached as an alternative
// representation so clients render HTML when supported, plain text otherwise.
type Email struct {
	Headers map[string]string // Custom headers
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text body
	From    string            // Sender address, optionally "Name <email>"
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
}
