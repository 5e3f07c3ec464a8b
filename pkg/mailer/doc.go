// Package mailer provides a transactional email abstraction with template rendering.
//
// The package separates email delivery (via senders) from body rendering, so the
// transport can be swapped without touching the template system. Templates are
// plain text/template pairs: a .txt variant carrying YAML frontmatter (subject and
// other metadata) and an .html variant wrapped in a shared HTML layout. Values are
// substituted verbatim into both variants; nothing is escaped or sanitized, which
// is intentional for messages that must carry literal secrets (e.g. a temporary
// password). Confidentiality relies on the transport's TLS, not on the body.
//
// # Components
//
//   - Sender: interface that delivery transports implement
//   - Renderer: renders a text/HTML template pair from an fs.FS
//   - Mailer: high-level client combining Sender and Renderer
//
// # Usage
//
//	sender := smtp.New(smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     587,
//		Username: "mailer",
//		Password: "secret",
//	})
//
//	// templates.FS holds password_reset.txt, password_reset.html
//	// and layouts/base.html.
//	renderer := mailer.NewRenderer(templates.FS)
//
//	m := mailer.New(sender, renderer, mailer.Config{
//		DefaultLayout:   "base.html",
//		FallbackSubject: "Notification",
//	})
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:       "user@example.com",
//		Template: "password_reset",
//		Data:     map[string]string{"Name": "Alice"},
//	})
//
// # Template format
//
// The .txt variant may start with YAML frontmatter delimited by "---" lines:
//
//	---
//	Subject: Password Reset - Sports Event Management
//	---
//	Hello {{.Name}},
//	...
//
// The .html variant is the inner body only; the renderer wraps it in the layout,
// which receives the rendered body as {{.Content}}.
//
// Subject resolution order: SendParams.Subject, then frontmatter Subject, then
// Config.FallbackSubject. Subjects are themselves processed as templates, so
// {{.Variable}} works in frontmatter subjects too.
package mailer
