// Package smtp implements mailer.Sender over standard SMTP submission.
//
// The sender authenticates with username/password and supports the two common
// TLS modes: TLS-on-connect (Config.Secure=true, typically port 465) and
// STARTTLS upgrade (Config.Secure=false, typically port 587). STARTTLS is
// mandatory, not opportunistic: a server that does not offer the upgrade
// fails the send rather than falling back to cleartext.
//
// Each Send dials a fresh session and tears it down afterwards; there is no
// connection pooling, so concurrent sends are fully independent.
package smtp
